// Package ranking scores catalog roles against résumé text with TF-IDF cosine
// similarity and finds the next skills to learn for the chosen role.
package ranking

import (
	"errors"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/catalog"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// DefaultSkillLimit is the number of missing skills recommended per match.
	DefaultSkillLimit = 2
	// DefaultOtherRoles is the number of runner-up roles reported per match.
	DefaultOtherRoles = 2
)

// ErrEmptyCatalog is returned when there are no roles to rank.
var ErrEmptyCatalog = errors.New("role catalog is empty")

// RoleDescription is the normalized text a role is vectorized from: its skills
// joined in catalog order.
func RoleDescription(skills []string) string {
	return parsing.Normalize(strings.Join(skills, " "))
}

// Rank scores every catalog role against the résumé text and returns one
// entry per role, highest score first. Equal scores keep catalog order, so an
// empty or all-stop-word résumé ranks roles in catalog order with score 0.
//
// The vector space is rebuilt on every call from the résumé plus all role
// descriptions.
func Rank(resumeText string, cat *catalog.Catalog) []types.RoleScore {
	roles := cat.Roles()

	docs := make([]string, 0, len(roles)+1)
	docs = append(docs, parsing.Normalize(resumeText))
	for _, r := range roles {
		docs = append(docs, RoleDescription(r.Skills))
	}

	space := NewVectorizer().Fit(docs)
	resumeVec := space.Vector(0)

	scores := make([]types.RoleScore, len(roles))
	for i, r := range roles {
		scores[i] = types.RoleScore{
			Role:  r.Name,
			Score: Cosine(resumeVec, space.Vector(i+1)),
		}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	return scores
}

// MissingSkills walks the role's skills in catalog order and returns the first
// limit skills whose normalized form is not a token of the résumé. A
// multi-word skill normalizes to a multi-token string and therefore never
// matches a single résumé token. Unknown roles yield an empty slice.
func MissingSkills(resumeText, role string, cat *catalog.Catalog, limit int) []string {
	missing := []string{}
	if limit <= 0 {
		return missing
	}

	skills, ok := cat.Skills(role)
	if !ok {
		return missing
	}

	words := parsing.WordSet(resumeText)
	for _, skill := range skills {
		if _, present := words[parsing.Normalize(skill)]; present {
			continue
		}
		missing = append(missing, skill)
		if len(missing) == limit {
			break
		}
	}
	return missing
}

// Match ranks the catalog against the résumé and assembles the best role, up
// to two runner-up roles, and up to two skills to learn next for the best role.
func Match(resumeText string, cat *catalog.Catalog) (*types.MatchResult, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	ranked := Rank(resumeText, cat)
	best := ranked[0]

	others := make([]string, 0, DefaultOtherRoles)
	for _, rs := range ranked[1:] {
		if len(others) == DefaultOtherRoles {
			break
		}
		if rs.Role == best.Role {
			continue
		}
		others = append(others, rs.Role)
	}

	return &types.MatchResult{
		BestRole:      best.Role,
		Score:         best.Score,
		RecommendNext: MissingSkills(resumeText, best.Role, cat, DefaultSkillLimit),
		OtherRoles:    others,
		Ranked:        ranked,
	}, nil
}
