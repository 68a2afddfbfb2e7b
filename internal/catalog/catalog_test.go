package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedPlacementsKeepsDeclaredOrder(t *testing.T) {
	assert.Equal(t, []Placement{PlacementPost, PlacementStory, PlacementReel}, SupportedPlacements(Instagram))
	assert.Equal(t, []Placement{PlacementPost, PlacementArticle}, SupportedPlacements(LinkedIn))
	assert.Nil(t, SupportedPlacements(Channel("Myspace")))
}

func TestSupportedPlacementsReturnsCopy(t *testing.T) {
	got := SupportedPlacements(Instagram)
	got[0] = PlacementArticle

	assert.Equal(t, PlacementPost, SupportedPlacements(Instagram)[0])
}

func TestLabelFor(t *testing.T) {
	tests := []struct {
		channel   Channel
		placement Placement
		want      string
	}{
		{Instagram, PlacementPost, "Feed"},
		{Instagram, PlacementStory, "Story"},
		{LinkedIn, PlacementPost, "Post"},
		{TikTok, PlacementReel, "Video"},
		{YouTube, PlacementReel, "Short"},
		{X, PlacementPost, "Tweet"},
		{Channel("Unknown"), PlacementPost, "Post"},
	}
	for _, tt := range tests {
		t.Run(string(tt.channel)+"/"+string(tt.placement), func(t *testing.T) {
			assert.Equal(t, tt.want, LabelFor(tt.channel, tt.placement))
		})
	}
}

func TestIsValidLabel(t *testing.T) {
	assert.True(t, IsValidLabel(Instagram, PlacementPost, "Feed"))
	assert.False(t, IsValidLabel(Instagram, PlacementPost, "Post"))
	assert.False(t, IsValidLabel(LinkedIn, PlacementStory, "Story"))
}

func TestPlacementForLabel(t *testing.T) {
	p, ok := PlacementForLabel(YouTube, "Community Post")
	require.True(t, ok)
	assert.Equal(t, PlacementPost, p)

	_, ok = PlacementForLabel(Instagram, "Post")
	assert.False(t, ok)
}

func TestParseChannel(t *testing.T) {
	ch, err := ParseChannel(" linkedin ")
	require.NoError(t, err)
	assert.Equal(t, LinkedIn, ch)

	_, err = ParseChannel("friendster")
	assert.Error(t, err)
}

func TestParseChannelsSkipsBlanks(t *testing.T) {
	got, err := ParseChannels([]string{"instagram", "", "X"})
	require.NoError(t, err)
	assert.Equal(t, []Channel{Instagram, X}, got)
}

func TestDefinitionIsDetached(t *testing.T) {
	def, ok := Definition(Instagram)
	require.True(t, ok)
	def.Labels[PlacementPost] = "Grid"

	assert.Equal(t, "Feed", LabelFor(Instagram, PlacementPost))
}
