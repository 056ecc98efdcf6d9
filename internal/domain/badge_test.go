package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCriteria(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Criteria
	}{
		{"count", `{"type":"count","target":"projects","threshold":3}`, CountCriteria{Target: StatProjects, Threshold: 3}},
		{"count without target", `{"type":"count","threshold":3}`, UnknownCriteria{RawType: CriteriaTypeCount}},
		{"rank", `{"type":"rank","threshold":10}`, RankCriteria{Threshold: 10}},
		{"custom", `{"type":"custom","customLogic":"early_adopter"}`, CustomCriteria{Logic: "early_adopter"}},
		{"unknown type", `{"type":"streak","threshold":7}`, UnknownCriteria{RawType: "streak"}},
		{"malformed", `{"type":`, UnknownCriteria{}},
		{"empty", ``, UnknownCriteria{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCriteria([]byte(tt.raw)))
		})
	}
}

func TestBadgeMarshalJSON_IncludesCriteria(t *testing.T) {
	b := Badge{Key: "top_ten", Criteria: RankCriteria{Threshold: 10}, Points: 200}

	raw, err := json.Marshal(b)
	require.NoError(t, err)

	var decoded struct {
		Key      string       `json:"key"`
		Points   int          `json:"points"`
		Criteria CriteriaSpec `json:"criteria"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "top_ten", decoded.Key)
	assert.Equal(t, 200, decoded.Points)
	assert.Equal(t, CriteriaSpec{Type: CriteriaTypeRank, Threshold: 10}, decoded.Criteria)
}

func TestUserStatsValue(t *testing.T) {
	s := UserStats{LikesReceived: 12, SkillsCount: 4}

	v, ok := s.Value(StatLikesReceived)
	assert.True(t, ok)
	assert.Equal(t, 12, v)

	v, ok = s.Value("skillsCount")
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = s.Value("followers")
	assert.False(t, ok)
}
