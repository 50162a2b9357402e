// Package jobsearch fetches job postings and attaches match scores.
package jobsearch

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/c4soto/resumemate/internal/headhunter"
	"github.com/c4soto/resumemate/internal/matching"
)

// querySkillLimit caps how many skills go into the search query text.
const querySkillLimit = 5

// Source produces postings for a skill list. Implementations must not
// attach match scores, the service does that uniformly.
type Source interface {
	Name() string
	Fetch(ctx context.Context, skills []string) ([]*Posting, error)
}

// Service orchestrates posting retrieval and scoring. The external source
// is optional; without it every search is served from the fixture set.
type Service struct {
	external Source
	fixture  Source
	logger   *zap.Logger
}

func NewService(external Source, logger *zap.Logger) *Service {
	return &Service{
		external: external,
		fixture:  NewFixtureSource(),
		logger:   logger,
	}
}

// Search returns postings with MatchScore populated. When the external
// source is requested but unavailable or failing, the result degrades to an
// empty list rather than an error: a partial result is preferable to
// halting the user flow.
func (s *Service) Search(ctx context.Context, skills []string, useExternal bool) []*Posting {
	source := s.fixture
	if useExternal && s.external != nil {
		source = s.external
	}

	postings, err := source.Fetch(ctx, skills)
	if err != nil {
		s.logger.Warn("job source failed, degrading to empty result",
			zap.String("source", source.Name()),
			zap.Error(err),
		)
		return []*Posting{}
	}

	for _, posting := range postings {
		posting.MatchScore = matching.Score(skills, matching.CombineFields(posting.Title, posting.Requirements))
	}

	return postings
}

// headhunterSource fetches postings from the hh.ru API.
type headhunterSource struct {
	client *headhunter.Client
}

func NewHeadHunterSource(client *headhunter.Client) Source {
	return &headhunterSource{client: client}
}

func (s *headhunterSource) Name() string { return "headhunter" }

func (s *headhunterSource) Fetch(ctx context.Context, skills []string) ([]*Posting, error) {
	query := skills
	if len(query) > querySkillLimit {
		query = query[:querySkillLimit]
	}

	vacancies, err := s.client.Search(ctx, &headhunter.SearchParams{
		Text:    strings.Join(query, " "),
		PerPage: headhunter.MaxPerPage,
		OrderBy: "relevance",
	})
	if err != nil {
		return nil, err
	}

	postings := make([]*Posting, 0, vacancies.Len())
	for _, vacancy := range vacancies.Items {
		location := vacancy.Area.Name
		if location == "" {
			location = locationNotSpecified
		}

		postings = append(postings, &Posting{
			ID:           vacancy.ID,
			Title:        vacancy.Name,
			Company:      vacancy.Employer.Name,
			Location:     location,
			Remote:       isRemote(vacancy.Name),
			Salary:       formatSalary(vacancy.Salary.From, vacancy.Salary.To, vacancy.Salary.Currency),
			URL:          vacancy.AlternateURL,
			Requirements: vacancy.Snippet.Requirement,
		})
	}

	return postings, nil
}
