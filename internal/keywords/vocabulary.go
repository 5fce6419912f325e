package keywords

// defaultVocabulary is the technical vocabulary checked when no job description is supplied.
// Order is significant: matches are reported in this order.
var defaultVocabulary = []string{
	// Languages
	"python", "java", "javascript", "typescript", "go", "rust", "c++", "c#", "ruby",
	"php", "kotlin", "swift", "scala", "sql", "html", "css", "bash",
	// Frameworks and runtimes
	"react", "angular", "vue", "node.js", "django", "flask", "spring", "rails",
	".net", "express", "next.js", "graphql", "grpc",
	// Cloud
	"aws", "azure", "gcp", "lambda", "serverless",
	// Data
	"postgresql", "mysql", "mongodb", "redis", "kafka", "elasticsearch", "spark",
	"pandas", "tensorflow", "pytorch",
	// Tooling
	"docker", "kubernetes", "terraform", "ansible", "jenkins", "git", "linux",
	"ci/cd", "prometheus", "grafana", "jira",
	// Multi-word terms, matched against the running text
	"machine learning", "data analysis", "rest api", "microservices architecture",
}

// aliases maps common spellings of vocabulary terms to their canonical form.
var aliases = map[string]string{
	"golang":     "go",
	"js":         "javascript",
	"ts":         "typescript",
	"k8s":        "kubernetes",
	"react.js":   "react",
	"reactjs":    "react",
	"vue.js":     "vue",
	"vuejs":      "vue",
	"nodejs":     "node.js",
	"node":       "node.js",
	"postgres":   "postgresql",
	"mongo":      "mongodb",
	"gcloud":     "gcp",
	"dotnet":     ".net",
	"nextjs":     "next.js",
	"cicd":       "ci/cd",
	"github":     "git",
	"gitlab":     "git",
	"restful":    "rest api",
}

// stopWords are common English and job-posting filler words that never count as keywords.
// Words of three characters or fewer are dropped before this set is consulted.
var stopWords = map[string]bool{
	"about": true, "above": true, "across": true, "after": true, "again": true,
	"also": true, "among": true, "and/or": true, "another": true, "any": true,
	"been": true, "before": true, "being": true, "below": true, "best": true,
	"between": true, "both": true, "candidate": true, "could": true, "does": true,
	"doing": true, "during": true, "each": true, "either": true, "etc.": true,
	"every": true, "from": true, "further": true, "have": true, "having": true,
	"here": true, "including": true, "into": true, "itself": true, "just": true,
	"like": true, "looking": true, "more": true, "most": true, "much": true,
	"must": true, "need": true, "needs": true, "only": true, "other": true,
	"ours": true, "over": true, "plus": true, "preferred": true, "same": true,
	"should": true, "some": true, "such": true, "than": true, "that": true,
	"their": true, "them": true, "then": true, "there": true, "these": true,
	"they": true, "this": true, "those": true, "through": true, "under": true,
	"until": true, "upon": true, "very": true, "want": true, "were": true,
	"what": true, "when": true, "where": true, "which": true, "while": true,
	"will": true, "with": true, "within": true, "without": true, "would": true,
	"year": true, "years": true, "your": true, "yours": true, "you'll": true,
	"we're": true, "ideal": true, "able": true, "ability": true, "strong": true,
}
