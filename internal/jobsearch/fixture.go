package jobsearch

import "context"

// fixtureSource serves a fixed set of three postings for demos and tests.
// The set must stay byte-for-byte stable across runs; only the match score
// varies with the skill list passed to the service.
type fixtureSource struct{}

func NewFixtureSource() Source {
	return &fixtureSource{}
}

func (s *fixtureSource) Name() string { return "fixture" }

func (s *fixtureSource) Fetch(context.Context, []string) ([]*Posting, error) {
	return []*Posting{
		{
			ID:           "sample_1",
			Title:        "Senior Python Developer",
			Company:      "TechCorp Inc.",
			Location:     "Москва",
			Remote:       true,
			Salary:       "200,000 - 300,000 ₽",
			URL:          "https://example.com/job1",
			Requirements: "Python, Django, PostgreSQL, опыт 3+ лет",
		},
		{
			ID:           "sample_2",
			Title:        "Full Stack Developer",
			Company:      "Digital Solutions",
			Location:     "Санкт-Петербург",
			Remote:       false,
			Salary:       "150,000 - 250,000 ₽",
			URL:          "https://example.com/job2",
			Requirements: "React, Node.js, опыт работы с API",
		},
		{
			ID:           "sample_3",
			Title:        "Data Scientist",
			Company:      "Analytics Pro",
			Location:     "Москва",
			Remote:       false,
			Salary:       "180,000 - 280,000 ₽",
			URL:          "https://example.com/job3",
			Requirements: "Python, SQL, анализ данных, визуализация",
		},
	}, nil
}
