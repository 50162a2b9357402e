package skills

// Term binds a lower-case vocabulary term to the canonical label shown to
// the user. Matching is done on the term, output is built from the label.
type Term struct {
	Match string
	Label string
}

// DefaultVocabulary is the closed set of technology, tool and process terms
// recognized in resumes. Extend it via NewWithVocabulary in tests.
func DefaultVocabulary() []Term {
	return []Term{
		// Languages and frameworks.
		{"python", "Python"},
		{"javascript", "JavaScript"},
		{"java", "Java"},
		{"c++", "C++"},
		{"c#", "C#"},
		{"php", "PHP"},
		{"ruby", "Ruby"},
		{"go", "Go"},
		{"rust", "Rust"},
		{"swift", "Swift"},
		{"kotlin", "Kotlin"},
		{"typescript", "TypeScript"},
		{"react", "React"},
		{"angular", "Angular"},
		{"vue", "Vue"},
		{"node.js", "Node.js"},
		{"django", "Django"},
		{"flask", "Flask"},
		{"spring", "Spring"},
		{"laravel", "Laravel"},
		{"html", "HTML"},
		{"css", "CSS"},
		{"sass", "Sass"},
		{"scss", "SCSS"},
		{"bootstrap", "Bootstrap"},
		{"tailwind", "Tailwind"},

		// Databases.
		{"sql", "SQL"},
		{"mysql", "MySQL"},
		{"postgresql", "PostgreSQL"},
		{"mongodb", "MongoDB"},
		{"redis", "Redis"},
		{"elasticsearch", "Elasticsearch"},
		{"sqlite", "SQLite"},

		// DevOps and tooling.
		{"docker", "Docker"},
		{"kubernetes", "Kubernetes"},
		{"aws", "AWS"},
		{"azure", "Azure"},
		{"gcp", "GCP"},
		{"jenkins", "Jenkins"},
		{"gitlab", "GitLab"},
		{"github", "GitHub"},
		{"git", "Git"},
		{"linux", "Linux"},
		{"nginx", "Nginx"},
		{"apache", "Apache"},
		{"terraform", "Terraform"},
		{"ansible", "Ansible"},

		// Data analysis.
		{"pandas", "Pandas"},
		{"numpy", "NumPy"},
		{"matplotlib", "Matplotlib"},
		{"seaborn", "Seaborn"},
		{"scikit-learn", "Scikit-learn"},
		{"tensorflow", "TensorFlow"},
		{"pytorch", "PyTorch"},
		{"jupyter", "Jupyter"},
		{"tableau", "Tableau"},
		{"power bi", "Power BI"},
		{"excel", "Excel"},

		// Mobile.
		{"android", "Android"},
		{"ios", "iOS"},
		{"flutter", "Flutter"},
		{"react native", "React Native"},
		{"xamarin", "Xamarin"},

		// Testing.
		{"selenium", "Selenium"},
		{"pytest", "Pytest"},
		{"junit", "JUnit"},
		{"testng", "TestNG"},
		{"cypress", "Cypress"},
		{"jest", "Jest"},

		// Design.
		{"figma", "Figma"},
		{"photoshop", "Photoshop"},
		{"illustrator", "Illustrator"},
		{"adobe xd", "Adobe XD"},
		{"sketch", "Sketch"},

		// Marketing and analytics.
		{"google analytics", "Google Analytics"},
		{"yandex metrika", "Yandex Metrika"},
		{"seo", "SEO"},
		{"sem", "SEM"},
		{"smm", "SMM"},
		{"crm", "CRM"},

		// Project management.
		{"agile", "Agile"},
		{"scrum", "Scrum"},
		{"kanban", "Kanban"},
		{"jira", "Jira"},
		{"confluence", "Confluence"},
		{"trello", "Trello"},
	}
}
