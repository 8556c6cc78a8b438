package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPatternsLabelFirst(t *testing.T) {
	cfg := DefaultPatternConfig()

	labels := []string{
		"What is a CAB?",
		"  untrimmed label  ",
		"UPPER case Label",
		"x",
	}
	for _, label := range labels {
		patterns := BuildPatterns(label, cfg)
		require.NotEmpty(t, patterns)
		assert.Equal(t, label, patterns[0], "label must be the first pattern verbatim")
	}
}

func TestBuildPatternsFiltering(t *testing.T) {
	cfg := DefaultPatternConfig()

	patterns := BuildPatterns("What is the change advisory board for?", cfg)
	// "what", "the", "for" are stop words; "is" is both short and a stop
	// word. Only the discriminating tokens survive.
	assert.Equal(t, []string{"What is the change advisory board for?", "change", "advisory", "board"}, patterns)
}

func TestBuildPatternsShortTokensDropped(t *testing.T) {
	patterns := BuildPatterns("QA of my CI", DefaultPatternConfig())
	assert.Equal(t, []string{"QA of my CI"}, patterns, "tokens shorter than MinTokenLen are dropped")
}

func TestBuildPatternsDeduplicates(t *testing.T) {
	patterns := BuildPatterns("deploy deploy DEPLOY deployment", DefaultPatternConfig())
	assert.Equal(t, []string{"deploy deploy DEPLOY deployment", "deploy", "deployment"}, patterns)
}

func TestBuildPatternsCap(t *testing.T) {
	cfg := DefaultPatternConfig()
	label := strings.Join([]string{
		"alpha", "bravo", "charlie", "delta", "echo",
		"foxtrot", "golf", "hotel", "india", "juliett",
	}, " ")

	patterns := BuildPatterns(label, cfg)
	require.Len(t, patterns, cfg.MaxKeywords+1)
	assert.Equal(t, label, patterns[0])
	assert.Equal(t, "hotel", patterns[len(patterns)-1], "keywords keep first-seen order")
}

func TestBuildPatternsNeverEmpty(t *testing.T) {
	patterns := BuildPatterns("", DefaultPatternConfig())
	assert.Equal(t, []string{""}, patterns)
}
