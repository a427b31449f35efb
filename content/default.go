package content

// DefaultContent is served whenever storage is unreachable or no document has
// been saved yet. It mirrors the site's original hardcoded copy, so a fresh
// deployment renders a complete page.
var DefaultContent = SiteContent{
	Visibility: Visibility{
		Hero:       true,
		About:      true,
		Experience: true,
		Skills:     true,
		Projects:   true,
		Education:  true,
		Contact:    true,
	},
	Hero: Hero{
		Badge:           "Open for worldwide opportunities",
		ScramblePhrases: []string{"Excellence", "Scalability", "Precision", "Innovation"},
		Description:     "I'm Khizar Rao. A Full-Stack & Mobile Developer specializing in high-fidelity products, scalable enterprise ecosystems, and business logic.",
		Stats: []Stat{
			{Value: "02+", Label: "Years Exp."},
			{Value: "20+", Label: "Projects"},
			{Value: "10+", Label: "Tech Stacks"},
		},
	},
	About: About{
		SectionLabel: "Expertise & Vision",
		Heading:      "Specialized in scaling",
		Subheading:   "Enterprise Ecosystems.",
		Paragraphs: []string{
			"Full-stack and Mobile Application Developer with nearly 2 years of experience building web, mobile, and enterprise solutions. I deliver systems that don't just work they scale.",
			"Specialized in ERP & CRM architecture, I solve complex business logic problems using modern high-performance stacks. My focus is always on maintainability, performance, and clean code.",
		},
		Cards: []AboutCard{
			{
				Title:       "Architecture First",
				Description: "Whether it's a healthcare referral system for NHS UK or complex production software, I prioritize scalable database designs and robust API layers.",
			},
			{
				Title:       "Multi-Stack Mastery",
				Description: "From PHP (Laravel/Yii) to Python Django, C# .NET to modern React/Next.js and Flutter ecosystems. I choose the right tool for the specific business challenge.",
			},
		},
	},
	Experience: []ExperienceItem{
		{
			Company: "Cartzlink",
			Role:    "Full-stack Developer",
			Period:  "Oct 2024 — Present",
			Desc:    "Architecting custom ERP, CRM, and Production systems. Leading maintenance for WIP Commander and engineered AI-integrated systems for NHS UK.",
			Tags:    []string{"PHP", "Laravel", "Django", "SQL Server"},
		},
		{
			Company: "Quantum Leaps",
			Role:    "PHP Developer (Contract)",
			Period:  "Sep 2024 — Oct 2024",
			Desc:    "Delivered rapid CRUD architectures and static business modules while coordinating system requirements.",
			Tags:    []string{"PHP", "Architecture", "Consultancy"},
		},
	},
	Skills: []SkillGroup{
		{Title: "Backend", Icon: "cpu", Skills: []string{"PHP (Laravel/Yii)", "Python (Django)", "C# (.NET)", "Node.js", "TypeScript", "REST APIs"}},
		{Title: "Frontend", Icon: "layout", Skills: []string{"React (Vite)", "Next.js", "Tailwind CSS", "Bootstrap", "JavaScript", "Framer Motion"}},
		{Title: "DataLayer", Icon: "database", Skills: []string{"SQL Server", "MySQL", "PostgreSQL", "Firebase Firestore", "SQLite"}},
		{Title: "Mobile", Icon: "smartphone", Skills: []string{"Flutter", "Dart", "Firebase Integration", "Logic Engines"}},
		{Title: "DevOps", Icon: "git-branch", Skills: []string{"Git", "GitHub/SVN", "Docker", "Legacy Maintenance"}},
		{Title: "Enterprise", Icon: "shield", Skills: []string{"ERP Systems", "CRM Architecture", "System Design", "Scalable Logic"}},
	},
	Projects: []ProjectItem{
		{
			Title:           "NHS Healthcare Referral System",
			Description:     "AI-integrated healthcare referral management system for NHS UK.",
			LongDescription: "Engineered a comprehensive referral management platform handling patient data routing, appointment scheduling, and inter-department communication for NHS healthcare providers.",
			Tags:            []string{"Django", "Python", "SQL Server", "AI Integration"},
			Category:        "AI",
			Accent:          "from-blue-500/20 to-cyan-500/20",
			Highlights:      []string{"HIPAA-compliant architecture", "AI-powered triage", "Real-time referral tracking"},
		},
		{
			Title:           "WIP Commander",
			Description:     "Enterprise production tracking and work-in-progress management system.",
			LongDescription: "Led maintenance and feature development for a large-scale production management platform used across manufacturing operations to track inventory, orders, and job progress.",
			Tags:            []string{"PHP", "Laravel", "SQL Server", "ERP"},
			Category:        "Enterprise",
			Accent:          "from-amber-500/20 to-orange-500/20",
			Highlights:      []string{"Production pipeline tracking", "Real-time dashboards", "Multi-tenant architecture"},
		},
		{
			Title:           "Custom ERP & CRM Suite",
			Description:     "Full-scale enterprise resource planning and customer relationship management.",
			LongDescription: "Architected modular ERP and CRM solutions with custom business logic engines, role-based access control, and automated reporting for enterprise clients.",
			Tags:            []string{"PHP", "Laravel", "MySQL", "REST APIs"},
			Category:        "Enterprise",
			Accent:          "from-emerald-500/20 to-green-500/20",
			Highlights:      []string{"Modular architecture", "Role-based access", "Automated reporting"},
		},
		{
			Title:           "Portfolio Website",
			Description:     "Modern, high-performance portfolio with premium design and animations.",
			LongDescription: "This very website — featuring custom cursor, theme switching, glassmorphism, and a serverless contact form, backed by this service.",
			Tags:            []string{"Next.js", "React", "Tailwind CSS", "Framer Motion"},
			Category:        "Web",
			Accent:          "from-violet-500/20 to-purple-500/20",
			Highlights:      []string{"Custom cursor engine", "Dark/light themes", "Serverless form handling"},
			Links:           &ProjectLinks{GitHub: "https://github.com/khizarrao2006/portfolio"},
		},
		{
			Title:           "Market Teller",
			Description:     "AI-powered mobile app for stock market insights and portfolio tracking.",
			LongDescription: "Developed a Flutter-based mobile application with Firebase backend featuring AI-driven market analysis, portfolio management, and real-time stock data visualization.",
			Tags:            []string{"Flutter", "Dart", "Firebase", "AI"},
			Category:        "Mobile",
			Accent:          "from-rose-500/20 to-pink-500/20",
			Highlights:      []string{"AI market analysis", "Real-time data", "Portfolio management"},
		},
		{
			Title:           "Enterprise Delivery Platform",
			Description:     "Multi-role logistics platform with real-time tracking and admin controls.",
			LongDescription: "Built a comprehensive delivery management system supporting users, drivers, and restaurants with real-time order tracking, route optimization, and admin analytics.",
			Tags:            []string{"Flutter", "Firebase", "Node.js", "Cloud Functions"},
			Category:        "Mobile",
			Accent:          "from-sky-500/20 to-indigo-500/20",
			Highlights:      []string{"Multi-role system", "Real-time tracking", "Admin analytics"},
		},
	},
	Education: []EducationItem{
		{Institution: "Aptech Learning Pakistan", Degree: "Higher Diploma in Software Engineering (HDSE)", Icon: "graduation-cap"},
		{Institution: "Jamia Millia Degree College", Degree: "Intermediate (Computer Science)", Icon: "book-open"},
		{Institution: "Blue Moon Grammar School", Degree: "Matriculation (Computer Science)", Icon: "award"},
	},
	Contact: Contact{
		Phone: "+92 305 3630364",
		Email: "Khizarraoworks@gmail.com",
		SocialLinks: []SocialLink{
			{Platform: "linkedin", URL: "https://www.linkedin.com/in/khizar-rao"},
			{Platform: "github", URL: "https://github.com/khizarrao2006"},
		},
		FormHeading: "Secure Your Infrastructure",
		FormQuote:   "Building systems and strategies that make a difference.",
	},
}
