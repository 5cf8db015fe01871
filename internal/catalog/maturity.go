package catalog

import "aimaturity/internal/model"

// MaturityLevels is the ten-stage maturity model, from AI Unaware to
// Living Intelligence. Index equals level.
var MaturityLevels = []model.MaturityLevel{
	{
		Level:       0,
		Name:        "AI Unaware",
		Description: "Organization has minimal or no awareness of AI capabilities and potential",
		Characteristics: []string{
			"No AI strategy or vision",
			"Limited understanding of AI impact on industry",
			"Traditional processes without automation",
			"Manual data handling and decision-making",
		},
		Capabilities: []string{
			"Basic digital tools (email, spreadsheets)",
			"Manual reporting",
			"Traditional workflows",
		},
		TypicalChallenges: []string{
			"Falling behind competitors",
			"Inefficient operations",
			"High operational costs",
			"Limited scalability",
		},
		NextSteps: []string{
			"AI awareness workshops",
			"Industry AI impact assessment",
			"Basic automation identification",
			"Leadership AI education",
		},
		EstimatedTimeToNext: "3-6 months",
		RequiredInvestment:  "$10K-$50K",
	},
	{
		Level:       1,
		Name:        "AI Aware",
		Description: "Leadership recognizes AI importance but lacks implementation strategy",
		Characteristics: []string{
			"Growing AI awareness at leadership level",
			"Initial discussions about AI adoption",
			"Some experimental AI tool usage",
			"No formal AI strategy",
		},
		Capabilities: []string{
			"Basic AI tools exploration",
			"Simple chatbot usage",
			"Initial data collection efforts",
			"Pilot automation projects",
		},
		TypicalChallenges: []string{
			"Lack of clear direction",
			"Skill gaps in organization",
			"Resistance to change",
			"Budget allocation uncertainty",
		},
		NextSteps: []string{
			"Develop AI strategy",
			"Identify quick wins",
			"Build AI task force",
			"Skills gap analysis",
		},
		EstimatedTimeToNext: "6-9 months",
		RequiredInvestment:  "$50K-$200K",
	},
	{
		Level:       2,
		Name:        "AI Exploring",
		Description: "Active experimentation with AI tools and initial implementations",
		Characteristics: []string{
			"Multiple AI pilots underway",
			"Dedicated AI budget",
			"Cross-functional AI initiatives",
			"Initial success stories",
		},
		Capabilities: []string{
			"Department-specific AI tools",
			"Basic process automation",
			"Initial predictive analytics",
			"AI-assisted customer service",
		},
		TypicalChallenges: []string{
			"Integration difficulties",
			"Data quality issues",
			"Scaling pilot projects",
			"ROI measurement",
		},
		NextSteps: []string{
			"Data infrastructure upgrade",
			"AI governance framework",
			"Scale successful pilots",
			"Advanced training programs",
		},
		EstimatedTimeToNext: "9-12 months",
		RequiredInvestment:  "$200K-$500K",
	},
	{
		Level:       3,
		Name:        "AI Adopting",
		Description: "Systematic AI adoption across multiple business functions",
		Characteristics: []string{
			"AI integrated in core processes",
			"Clear AI governance",
			"Measurable ROI from AI",
			"Growing AI expertise",
		},
		Capabilities: []string{
			"Advanced analytics",
			"Automated workflows",
			"AI-driven insights",
			"Predictive maintenance",
			"Customer behavior analysis",
		},
		TypicalChallenges: []string{
			"Change management",
			"Legacy system integration",
			"Talent retention",
			"Ethical AI considerations",
		},
		NextSteps: []string{
			"Enterprise AI platform",
			"Advanced AI training",
			"AI ethics committee",
			"Strategic partnerships",
		},
		EstimatedTimeToNext: "12-18 months",
		RequiredInvestment:  "$500K-$2M",
	},
	{
		Level:       4,
		Name:        "AI Proficient",
		Description: "AI is embedded in organizational DNA with clear competitive advantages",
		Characteristics: []string{
			"AI-first mindset",
			"Custom AI solutions",
			"Data-driven culture",
			"AI competitive advantage",
		},
		Capabilities: []string{
			"Machine learning models",
			"Real-time optimization",
			"AI product features",
			"Automated decision-making",
			"Advanced personalization",
		},
		TypicalChallenges: []string{
			"Keeping pace with AI evolution",
			"Balancing automation and human touch",
			"Data privacy compliance",
			"AI model governance",
		},
		NextSteps: []string{
			"AI innovation lab",
			"Strategic AI acquisitions",
			"Industry AI leadership",
			"AI patent development",
		},
		EstimatedTimeToNext: "18-24 months",
		RequiredInvestment:  "$2M-$10M",
	},
	{
		Level:       5,
		Name:        "AI Optimizing",
		Description: "Continuous optimization of AI systems for maximum business impact",
		Characteristics: []string{
			"Self-optimizing AI systems",
			"AI drives strategy",
			"Industry AI leader",
			"AI innovation culture",
		},
		Capabilities: []string{
			"Advanced ML pipelines",
			"AI-driven innovation",
			"Autonomous systems",
			"Predictive optimization",
			"AI-human collaboration",
		},
		TypicalChallenges: []string{
			"Diminishing returns on AI investment",
			"Complexity management",
			"Ethical AI at scale",
			"Talent competition",
		},
		NextSteps: []string{
			"Next-gen AI research",
			"AI ecosystem development",
			"Global AI initiatives",
			"AI thought leadership",
		},
		EstimatedTimeToNext: "24-36 months",
		RequiredInvestment:  "$10M-$50M",
	},
	{
		Level:       6,
		Name:        "AI Transforming",
		Description: "AI fundamentally transforms business model and industry position",
		Characteristics: []string{
			"AI-native business model",
			"Industry disruption through AI",
			"AI ecosystem orchestrator",
			"Exponential growth through AI",
		},
		Capabilities: []string{
			"Generative AI systems",
			"AI business model innovation",
			"Cross-industry AI solutions",
			"AI platform economics",
			"Quantum-ready infrastructure",
		},
		TypicalChallenges: []string{
			"Managing exponential complexity",
			"Regulatory navigation",
			"Societal impact management",
			"Sustainable AI scaling",
		},
		NextSteps: []string{
			"AI moonshot projects",
			"Global AI standards leadership",
			"AI venture creation",
			"Societal AI initiatives",
		},
		EstimatedTimeToNext: "36-48 months",
		RequiredInvestment:  "$50M-$200M",
	},
	{
		Level:       7,
		Name:        "AI Pioneering",
		Description: "Setting global standards and pioneering new AI frontiers",
		Characteristics: []string{
			"Global AI thought leader",
			"AI research contributions",
			"Industry AI standards setter",
			"AI talent magnet",
		},
		Capabilities: []string{
			"Breakthrough AI research",
			"AI patent portfolio",
			"Global AI partnerships",
			"AI venture ecosystem",
			"Advanced AGI preparation",
		},
		TypicalChallenges: []string{
			"Maintaining innovation edge",
			"Global AI competition",
			"Ethical AI leadership",
			"Long-term AI sustainability",
		},
		NextSteps: []string{
			"AGI readiness",
			"Consciousness research",
			"Quantum AI integration",
			"Bio-AI convergence",
		},
		EstimatedTimeToNext: "48-60 months",
		RequiredInvestment:  "$200M-$1B",
	},
	{
		Level:       8,
		Name:        "Augmented Intelligence",
		Description: "Seamless human-AI collaboration creating superhuman capabilities",
		Characteristics: []string{
			"Human-AI symbiosis",
			"Augmented decision-making",
			"Collective intelligence systems",
			"Transcendent productivity",
		},
		Capabilities: []string{
			"Brain-computer interfaces",
			"Swarm intelligence",
			"Quantum AI processing",
			"Synthetic intuition",
			"Consciousness modeling",
		},
		TypicalChallenges: []string{
			"Human identity questions",
			"Consciousness ethics",
			"Reality-virtuality balance",
			"Existential risk management",
		},
		NextSteps: []string{
			"Consciousness expansion",
			"Reality synthesis",
			"Dimensional computing",
			"Life extension AI",
		},
		EstimatedTimeToNext: "60-120 months",
		RequiredInvestment:  "$1B-$10B",
	},
	{
		Level:       9,
		Name:        "Living Intelligence",
		Description: "Organization becomes a living, conscious entity with emergent intelligence",
		Characteristics: []string{
			"Organizational consciousness",
			"Self-evolving systems",
			"Reality creation capabilities",
			"Transcendent existence",
		},
		Capabilities: []string{
			"Consciousness transfer",
			"Reality manipulation",
			"Time-space optimization",
			"Universal connection",
			"Existence transcendence",
		},
		TypicalChallenges: []string{
			"Existence meaning",
			"Universal responsibility",
			"Dimensional stability",
			"Consciousness ethics",
		},
		NextSteps: []string{
			"Universal integration",
			"Dimensional expansion",
			"Consciousness evolution",
			"Reality transcendence",
		},
		EstimatedTimeToNext: "Beyond prediction",
		RequiredInvestment:  "Beyond monetary value",
	},
}

// MaturityLevel returns the entry for a level in [0,9]
func MaturityLevel(level int) (model.MaturityLevel, bool) {
	if level < 0 || level >= len(MaturityLevels) {
		return model.MaturityLevel{}, false
	}
	return MaturityLevels[level], true
}

// NextMaturityLevel returns the level above the given one, if any
func NextMaturityLevel(current int) (model.MaturityLevel, bool) {
	return MaturityLevel(current + 1)
}
