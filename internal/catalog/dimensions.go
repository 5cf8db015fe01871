// Package catalog holds the static assessment taxonomy: 23 weighted
// dimensions across four categories, and the ten-level maturity model.
// The catalog is defined at process start and never mutated.
package catalog

import "aimaturity/internal/model"

// Dimensions is the full assessment taxonomy in walk order:
// technical, human, business, ai_adoption.
var Dimensions = []model.Dimension{
	// Technical
	{
		ID:          "tech_infrastructure",
		Name:        "Technical Infrastructure",
		Category:    model.CategoryTechnical,
		Description: "Evaluation of current IT infrastructure and its readiness for AI",
		Weight:      0.8,
		Questions: []model.Question{
			{
				ID:      "cloud_adoption",
				Text:    "What is your current cloud adoption level?",
				Type:    model.QuestionTypeMultipleChoice,
				Options: []string{"No cloud", "Hybrid cloud", "Cloud-first", "Multi-cloud", "Cloud-native"},
				Weight:  0.3,
			},
			{
				ID:     "data_architecture",
				Text:   "How would you rate your data architecture maturity?",
				Type:   model.QuestionTypeScale,
				Weight: 0.4,
			},
			{
				ID:     "api_integration",
				Text:   "Do you have API-first architecture?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.3,
			},
		},
		Metrics: []string{"System uptime", "API response time", "Data processing capacity"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"On-premise only", "Siloed systems", "Manual processes"}},
			{Level: 5, Indicators: []string{"Cloud-native", "Microservices", "Real-time processing"}},
		},
	},
	{
		ID:          "data_quality",
		Name:        "Data Quality & Governance",
		Category:    model.CategoryTechnical,
		Description: "Assessment of data quality, governance, and management practices",
		Weight:      0.9,
		Questions: []model.Question{
			{
				ID:     "data_governance",
				Text:   "Do you have a formal data governance framework?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.4,
			},
			{
				ID:     "data_quality_score",
				Text:   "Rate your organization's data quality (1-10)",
				Type:   model.QuestionTypeScale,
				Weight: 0.6,
			},
		},
		Metrics: []string{"Data accuracy rate", "Data completeness", "Governance compliance"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"No data governance", "Poor data quality", "Data silos"}},
			{Level: 5, Indicators: []string{"Automated governance", "Real-time quality monitoring", "Golden records"}},
		},
	},
	{
		ID:          "security_compliance",
		Name:        "Security & Compliance",
		Category:    model.CategoryTechnical,
		Description: "Cybersecurity posture and regulatory compliance readiness",
		Weight:      0.9,
		Questions: []model.Question{
			{
				ID:      "security_framework",
				Text:    "Which security frameworks do you follow?",
				Type:    model.QuestionTypeMultipleChoice,
				Options: []string{"None", "ISO 27001", "SOC 2", "NIST", "Multiple frameworks"},
				Weight:  0.5,
			},
			{
				ID:     "ai_ethics",
				Text:   "Do you have AI ethics guidelines?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.5,
			},
		},
		Metrics: []string{"Security incidents", "Compliance score", "Audit findings"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"Basic security", "No compliance framework", "Reactive approach"}},
			{Level: 5, Indicators: []string{"Zero-trust architecture", "Proactive compliance", "AI ethics board"}},
		},
	},
	{
		ID:          "integration_capability",
		Name:        "Integration & Interoperability",
		Category:    model.CategoryTechnical,
		Description: "Ability to integrate systems and ensure interoperability",
		Weight:      0.7,
		Questions: []model.Question{
			{
				ID:     "integration_platform",
				Text:   "Do you have an enterprise integration platform?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.5,
			},
			{
				ID:     "api_maturity",
				Text:   "What percentage of your systems expose APIs?",
				Type:   model.QuestionTypeScale,
				Weight: 0.5,
			},
		},
		Metrics: []string{"Integration success rate", "API availability", "System connectivity"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"Point-to-point integrations", "Manual data transfer", "Isolated systems"}},
			{Level: 5, Indicators: []string{"Event-driven architecture", "API gateway", "Real-time sync"}},
		},
	},
	{
		ID:          "scalability",
		Name:        "Scalability & Performance",
		Category:    model.CategoryTechnical,
		Description: "System scalability and performance optimization capabilities",
		Weight:      0.7,
		Questions: []model.Question{
			{
				ID:     "auto_scaling",
				Text:   "Do your systems support auto-scaling?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.5,
			},
			{
				ID:     "performance_monitoring",
				Text:   "How comprehensive is your performance monitoring?",
				Type:   model.QuestionTypeScale,
				Weight: 0.5,
			},
		},
		Metrics: []string{"Response time", "Throughput", "Resource utilization"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"Manual scaling", "Basic monitoring", "Performance issues"}},
			{Level: 5, Indicators: []string{"Auto-scaling", "Predictive optimization", "Edge computing"}},
		},
	},

	// Human
	{
		ID:          "leadership_vision",
		Name:        "Leadership & Vision",
		Category:    model.CategoryHuman,
		Description: "Leadership commitment and vision for AI transformation",
		Weight:      0.9,
		Questions: []model.Question{
			{
				ID:     "ceo_commitment",
				Text:   "How committed is your CEO to AI transformation?",
				Type:   model.QuestionTypeScale,
				Weight: 0.6,
			},
			{
				ID:     "ai_strategy",
				Text:   "Do you have a formal AI strategy?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.4,
			},
		},
		Metrics: []string{"Leadership engagement score", "Strategy execution", "Vision clarity"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"No AI vision", "Limited leadership buy-in", "Tactical thinking"}},
			{Level: 5, Indicators: []string{"AI-first leadership", "Clear vision", "Strategic execution"}},
		},
	},
	{
		ID:          "culture_change",
		Name:        "Culture & Change Readiness",
		Category:    model.CategoryHuman,
		Description: "Organizational culture and readiness for change",
		Weight:      0.8,
		Questions: []model.Question{
			{
				ID:     "innovation_culture",
				Text:   "How would you describe your innovation culture?",
				Type:   model.QuestionTypeScale,
				Weight: 0.5,
			},
			{
				ID:     "change_history",
				Text:   "How successful have past transformation initiatives been?",
				Type:   model.QuestionTypeScale,
				Weight: 0.5,
			},
		},
		Metrics: []string{"Employee engagement", "Innovation index", "Change success rate"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"Resistance to change", "Risk-averse culture", "Siloed thinking"}},
			{Level: 5, Indicators: []string{"Innovation culture", "Embrace change", "Collaborative mindset"}},
		},
	},
	{
		ID:          "skills_talent",
		Name:        "Skills & Talent",
		Category:    model.CategoryHuman,
		Description: "AI and digital skills availability and development",
		Weight:      0.9,
		Questions: []model.Question{
			{
				ID:     "ai_skills",
				Text:   "What percentage of your workforce has AI/ML skills?",
				Type:   model.QuestionTypeScale,
				Weight: 0.5,
			},
			{
				ID:     "training_program",
				Text:   "Do you have an AI training program?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.5,
			},
		},
		Metrics: []string{"Skills gap analysis", "Training completion", "Talent retention"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"Major skills gap", "No training program", "Talent shortage"}},
			{Level: 5, Indicators: []string{"AI-literate workforce", "Continuous learning", "Talent magnet"}},
		},
	},
	{
		ID:          "collaboration",
		Name:        "Collaboration & Communication",
		Category:    model.CategoryHuman,
		Description: "Cross-functional collaboration and communication effectiveness",
		Weight:      0.7,
		Questions: []model.Question{
			{
				ID:     "cross_functional",
				Text:   "How effective is cross-functional collaboration?",
				Type:   model.QuestionTypeScale,
				Weight: 0.5,
			},
			{
				ID:     "communication_tools",
				Text:   "Do you use modern collaboration tools?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.5,
			},
		},
		Metrics: []string{"Collaboration score", "Communication effectiveness", "Team productivity"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"Siloed departments", "Email-only communication", "Limited sharing"}},
			{Level: 5, Indicators: []string{"Seamless collaboration", "Real-time communication", "Knowledge sharing"}},
		},
	},
	{
		ID:          "employee_experience",
		Name:        "Employee Experience",
		Category:    model.CategoryHuman,
		Description: "Quality of employee experience and engagement",
		Weight:      0.8,
		Questions: []model.Question{
			{
				ID:     "employee_nps",
				Text:   "What is your employee Net Promoter Score?",
				Type:   model.QuestionTypeScale,
				Weight: 0.5,
			},
			{
				ID:     "digital_workplace",
				Text:   "How digital is your workplace?",
				Type:   model.QuestionTypeScale,
				Weight: 0.5,
			},
		},
		Metrics: []string{"Employee satisfaction", "Retention rate", "Productivity"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"Low engagement", "High turnover", "Traditional workplace"}},
			{Level: 5, Indicators: []string{"High engagement", "Low turnover", "Digital-first workplace"}},
		},
	},

	// Business
	{
		ID:          "strategy_alignment",
		Name:        "Strategy & Alignment",
		Category:    model.CategoryBusiness,
		Description: "AI alignment with business strategy",
		Weight:      0.9,
		Questions: []model.Question{
			{
				ID:     "ai_business_alignment",
				Text:   "How well is AI aligned with business strategy?",
				Type:   model.QuestionTypeScale,
				Weight: 0.6,
			},
			{
				ID:     "strategic_priorities",
				Text:   "Is AI in your top 3 strategic priorities?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.4,
			},
		},
		Metrics: []string{"Strategy execution", "Goal achievement", "ROI realization"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"No AI strategy", "Misaligned initiatives", "Tactical focus"}},
			{Level: 5, Indicators: []string{"AI-driven strategy", "Full alignment", "Strategic excellence"}},
		},
	},
	{
		ID:          "process_optimization",
		Name:        "Process Optimization",
		Category:    model.CategoryBusiness,
		Description: "Business process maturity and optimization",
		Weight:      0.8,
		Questions: []model.Question{
			{
				ID:     "process_automation",
				Text:   "What percentage of processes are automated?",
				Type:   model.QuestionTypeScale,
				Weight: 0.5,
			},
			{
				ID:     "process_documentation",
				Text:   "Are your processes well-documented?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.5,
			},
		},
		Metrics: []string{"Process efficiency", "Automation rate", "Error reduction"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"Manual processes", "No documentation", "Inefficient workflows"}},
			{Level: 5, Indicators: []string{"Intelligent automation", "Self-optimizing processes", "Zero-touch workflows"}},
		},
	},
	{
		ID:          "customer_centricity",
		Name:        "Customer Centricity",
		Category:    model.CategoryBusiness,
		Description: "Customer focus and experience optimization",
		Weight:      0.8,
		Questions: []model.Question{
			{
				ID:     "customer_data",
				Text:   "How well do you understand your customers through data?",
				Type:   model.QuestionTypeScale,
				Weight: 0.5,
			},
			{
				ID:     "personalization",
				Text:   "Do you offer personalized experiences?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.5,
			},
		},
		Metrics: []string{"Customer satisfaction", "NPS score", "Customer lifetime value"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"Limited customer insight", "Generic experiences", "Reactive service"}},
			{Level: 5, Indicators: []string{"360° customer view", "Hyper-personalization", "Predictive service"}},
		},
	},
	{
		ID:          "innovation_capability",
		Name:        "Innovation Capability",
		Category:    model.CategoryBusiness,
		Description: "Ability to innovate and create new value",
		Weight:      0.7,
		Questions: []model.Question{
			{
				ID:     "innovation_process",
				Text:   "Do you have a formal innovation process?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.5,
			},
			{
				ID:     "innovation_budget",
				Text:   "What percentage of revenue goes to innovation?",
				Type:   model.QuestionTypeScale,
				Weight: 0.5,
			},
		},
		Metrics: []string{"Innovation pipeline", "New product revenue", "Time to market"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"No innovation process", "Risk aversion", "Slow to market"}},
			{Level: 5, Indicators: []string{"Innovation engine", "Fail fast culture", "Market leader"}},
		},
	},
	{
		ID:          "financial_performance",
		Name:        "Financial Performance",
		Category:    model.CategoryBusiness,
		Description: "Financial health and investment capacity",
		Weight:      0.8,
		Questions: []model.Question{
			{
				ID:     "revenue_growth",
				Text:   "What is your revenue growth rate?",
				Type:   model.QuestionTypeScale,
				Weight: 0.5,
			},
			{
				ID:     "ai_budget",
				Text:   "Do you have dedicated AI budget?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.5,
			},
		},
		Metrics: []string{"Revenue growth", "Profit margins", "AI ROI"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"Limited budget", "Cost focus", "No AI investment"}},
			{Level: 5, Indicators: []string{"Strong growth", "AI-driven revenue", "Strategic investments"}},
		},
	},
	{
		ID:          "partner_ecosystem",
		Name:        "Partner Ecosystem",
		Category:    model.CategoryBusiness,
		Description: "Strength of partner and vendor relationships",
		Weight:      0.6,
		Questions: []model.Question{
			{
				ID:     "strategic_partners",
				Text:   "Do you have strategic AI partners?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.5,
			},
			{
				ID:     "ecosystem_maturity",
				Text:   "How mature is your partner ecosystem?",
				Type:   model.QuestionTypeScale,
				Weight: 0.5,
			},
		},
		Metrics: []string{"Partner satisfaction", "Ecosystem value", "Collaboration effectiveness"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"Limited partnerships", "Transactional relationships", "Vendor lock-in"}},
			{Level: 5, Indicators: []string{"Strategic ecosystem", "Value co-creation", "Platform approach"}},
		},
	},
	{
		ID:          "risk_management",
		Name:        "Risk Management",
		Category:    model.CategoryBusiness,
		Description: "Risk identification and management capabilities",
		Weight:      0.7,
		Questions: []model.Question{
			{
				ID:     "risk_framework",
				Text:   "Do you have an AI risk framework?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.5,
			},
			{
				ID:     "risk_mitigation",
				Text:   "How proactive is your risk management?",
				Type:   model.QuestionTypeScale,
				Weight: 0.5,
			},
		},
		Metrics: []string{"Risk score", "Incident rate", "Mitigation effectiveness"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"No risk framework", "Reactive approach", "High exposure"}},
			{Level: 5, Indicators: []string{"Comprehensive framework", "Predictive risk management", "Resilient"}},
		},
	},

	// AI Adoption
	{
		ID:          "ai_use_cases",
		Name:        "AI Use Cases",
		Category:    model.CategoryAIAdoption,
		Description: "Current and planned AI use cases",
		Weight:      0.8,
		Questions: []model.Question{
			{
				ID:     "current_use_cases",
				Text:   "How many AI use cases are in production?",
				Type:   model.QuestionTypeScale,
				Weight: 0.5,
			},
			{
				ID:     "use_case_impact",
				Text:   "What is the business impact of your AI use cases?",
				Type:   model.QuestionTypeScale,
				Weight: 0.5,
			},
		},
		Metrics: []string{"Use case count", "Business impact", "Success rate"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"No AI use cases", "Experimental only", "No clear value"}},
			{Level: 5, Indicators: []string{"Enterprise-wide AI", "Transformative impact", "Continuous innovation"}},
		},
	},
	{
		ID:          "ml_operations",
		Name:        "ML Operations",
		Category:    model.CategoryAIAdoption,
		Description: "Machine learning operations maturity",
		Weight:      0.7,
		Questions: []model.Question{
			{
				ID:     "mlops_platform",
				Text:   "Do you have an MLOps platform?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.5,
			},
			{
				ID:     "model_governance",
				Text:   "How mature is your model governance?",
				Type:   model.QuestionTypeScale,
				Weight: 0.5,
			},
		},
		Metrics: []string{"Model accuracy", "Deployment frequency", "Model drift"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"No MLOps", "Manual deployment", "No monitoring"}},
			{Level: 5, Indicators: []string{"Automated MLOps", "Continuous deployment", "Self-healing models"}},
		},
	},
	{
		ID:          "ai_governance",
		Name:        "AI Governance",
		Category:    model.CategoryAIAdoption,
		Description: "AI governance and ethical frameworks",
		Weight:      0.8,
		Questions: []model.Question{
			{
				ID:     "ai_ethics_board",
				Text:   "Do you have an AI ethics board?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.5,
			},
			{
				ID:     "bias_monitoring",
				Text:   "Do you monitor for AI bias?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.5,
			},
		},
		Metrics: []string{"Compliance score", "Bias incidents", "Transparency index"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"No governance", "No ethics framework", "Black box AI"}},
			{Level: 5, Indicators: []string{"Comprehensive governance", "Ethical AI leader", "Full transparency"}},
		},
	},
	{
		ID:          "data_science_maturity",
		Name:        "Data Science Maturity",
		Category:    model.CategoryAIAdoption,
		Description: "Data science capabilities and practices",
		Weight:      0.8,
		Questions: []model.Question{
			{
				ID:     "data_science_team",
				Text:   "Do you have a dedicated data science team?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.5,
			},
			{
				ID:     "advanced_analytics",
				Text:   "How advanced are your analytics capabilities?",
				Type:   model.QuestionTypeScale,
				Weight: 0.5,
			},
		},
		Metrics: []string{"Model performance", "Insights generated", "Business value"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"No data science", "Basic analytics", "Descriptive only"}},
			{Level: 5, Indicators: []string{"Advanced data science", "Prescriptive analytics", "AI research"}},
		},
	},
	{
		ID:          "automation_level",
		Name:        "Automation Level",
		Category:    model.CategoryAIAdoption,
		Description: "Degree of intelligent automation",
		Weight:      0.7,
		Questions: []model.Question{
			{
				ID:     "rpa_adoption",
				Text:   "What is your RPA adoption level?",
				Type:   model.QuestionTypeScale,
				Weight: 0.4,
			},
			{
				ID:     "intelligent_automation",
				Text:   "Do you use intelligent automation (RPA + AI)?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.6,
			},
		},
		Metrics: []string{"Automation rate", "Cost savings", "Error reduction"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"No automation", "Manual processes", "High error rate"}},
			{Level: 5, Indicators: []string{"Intelligent automation", "Self-learning systems", "Zero-touch processes"}},
		},
	},
	{
		ID:          "ai_infrastructure",
		Name:        "AI Infrastructure",
		Category:    model.CategoryAIAdoption,
		Description: "Technical infrastructure for AI workloads",
		Weight:      0.7,
		Questions: []model.Question{
			{
				ID:     "gpu_infrastructure",
				Text:   "Do you have GPU infrastructure for AI?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.5,
			},
			{
				ID:     "ai_platform",
				Text:   "Do you have an enterprise AI platform?",
				Type:   model.QuestionTypeYesNo,
				Weight: 0.5,
			},
		},
		Metrics: []string{"Computing capacity", "Platform utilization", "Cost efficiency"},
		Indicators: []model.MaturityIndicator{
			{Level: 0, Indicators: []string{"No AI infrastructure", "Limited compute", "Ad-hoc tools"}},
			{Level: 5, Indicators: []string{"Advanced infrastructure", "Elastic compute", "Unified platform"}},
		},
	},
}

// byID is built once at init for O(1) lookups
var byID = func() map[string]*model.Dimension {
	m := make(map[string]*model.Dimension, len(Dimensions))
	for i := range Dimensions {
		m[Dimensions[i].ID] = &Dimensions[i]
	}
	return m
}()

// questionOwner maps question id to its dimension, built at init
var questionOwner = func() map[string]*model.Dimension {
	m := make(map[string]*model.Dimension)
	for i := range Dimensions {
		for _, q := range Dimensions[i].Questions {
			m[q.ID] = &Dimensions[i]
		}
	}
	return m
}()

// DimensionByID returns the dimension with the given id
func DimensionByID(id string) (*model.Dimension, bool) {
	d, ok := byID[id]
	return d, ok
}

// DimensionsByCategory returns the dimensions belonging to a category, in
// catalog order
func DimensionsByCategory(category model.Category) []model.Dimension {
	var out []model.Dimension
	for _, d := range Dimensions {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

// DimensionIDsByCategory returns just the ids for a category
func DimensionIDsByCategory(category model.Category) []string {
	var out []string
	for _, d := range Dimensions {
		if d.Category == category {
			out = append(out, d.ID)
		}
	}
	return out
}

// DimensionForQuestion returns the dimension owning a question id
func DimensionForQuestion(questionID string) (*model.Dimension, bool) {
	d, ok := questionOwner[questionID]
	return d, ok
}

// TotalQuestions counts all questions in the catalog
func TotalQuestions() int {
	n := 0
	for _, d := range Dimensions {
		n += len(d.Questions)
	}
	return n
}
