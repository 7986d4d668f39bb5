// Package types provides type definitions for structured data used throughout the resume matcher.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RoleScore is the similarity of a résumé to one catalog role.
type RoleScore struct {
	Role  string  `json:"role"`
	Score float64 `json:"score"`
}

// MatchResult is the outcome of matching one résumé against the role catalog.
type MatchResult struct {
	BestRole      string      `json:"best_role"`
	Score         float64     `json:"score"`
	RecommendNext []string    `json:"recommend_next"`
	OtherRoles    []string    `json:"other_roles"`
	Ranked        []RoleScore `json:"ranked,omitempty"`
}

// CheckResumeResponse is the public response body of the résumé check endpoint.
type CheckResumeResponse struct {
	BestRole      string   `json:"best_role"`
	RecommendNext []string `json:"recommend_next"`
	OtherRoles    []string `json:"other_roles"`
}

// Response returns the public view of the result. Slices are never nil so
// they encode as empty JSON arrays.
func (m *MatchResult) Response() CheckResumeResponse {
	resp := CheckResumeResponse{
		BestRole:      m.BestRole,
		RecommendNext: m.RecommendNext,
		OtherRoles:    m.OtherRoles,
	}
	if resp.RecommendNext == nil {
		resp.RecommendNext = []string{}
	}
	if resp.OtherRoles == nil {
		resp.OtherRoles = []string{}
	}
	return resp
}

// RoleSummary describes a catalog role for listing endpoints.
type RoleSummary struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}
