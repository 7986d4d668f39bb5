package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchResult_Response(t *testing.T) {
	result := &MatchResult{
		BestRole:      "Data Scientist",
		Score:         0.31,
		RecommendNext: []string{"EDA", "Scikit-learn"},
		OtherRoles:    []string{"Data Analyst", "ML Engineer"},
		Ranked:        []RoleScore{{Role: "Data Scientist", Score: 0.31}},
	}

	jsonBytes, err := json.Marshal(result.Response())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"best_role": "Data Scientist",
		"recommend_next": ["EDA", "Scikit-learn"],
		"other_roles": ["Data Analyst", "ML Engineer"]
	}`, string(jsonBytes))
}

func TestMatchResult_ResponseEmptyLists(t *testing.T) {
	result := &MatchResult{BestRole: "Animator"}

	jsonBytes, err := json.Marshal(result.Response())
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"recommend_next":[]`)
	assert.Contains(t, string(jsonBytes), `"other_roles":[]`)
	assert.NotContains(t, string(jsonBytes), "score")
}
