package main

// Static section content for the marketing pages. Localized strings live
// in the i18n tables; this file holds the structure around them.

type skillBadge struct {
	Name string
	Logo string
}

type skillCategory struct {
	TitleKey string
	Icon     string
	Skills   []skillBadge
}

var skillCategories = []skillCategory{
	{
		TitleKey: "skills.frontend",
		Icon:     "code",
		Skills: []skillBadge{
			{"React", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/react.svg"},
			{"Angular", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/angular.svg"},
			{"TypeScript", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/typescript.svg"},
			{"JavaScript", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/javascript.svg"},
			{"Tailwind", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/tailwindcss.svg"},
			{"Material UI", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/mui.svg"},
			{"Vue.js", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/vuedotjs.svg"},
			{"RxJS", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/reactivex.svg"},
		},
	},
	{
		TitleKey: "skills.backend",
		Icon:     "database",
		Skills: []skillBadge{
			{"Java", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/oracle.svg"},
			{"Spring Boot", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/spring.svg"},
			{"Node.js", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/nodedotjs.svg"},
			{"NestJS", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/nestjs.svg"},
			{"Scala", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/scala.svg"},
			{"PostgreSQL", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/postgresql.svg"},
			{"MongoDB", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/mongodb.svg"},
			{"Oracle", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/oracle.svg"},
		},
	},
	{
		TitleKey: "skills.tools",
		Icon:     "wrench",
		Skills: []skillBadge{
			{"AWS", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/amazonaws.svg"},
			{"Azure", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/microsoftazure.svg"},
			{"Docker", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/docker.svg"},
			{"Kubernetes", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/kubernetes.svg"},
			{"Kafka", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/apachekafka.svg"},
			{"Git", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/git.svg"},
			{"Jenkins", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/jenkins.svg"},
			{"GraphQL", "https://cdn.jsdelivr.net/npm/simple-icons@v11/icons/graphql.svg"},
		},
	},
}

type companyCard struct {
	KeyPrefix string // i18n prefix: <prefix>.name / .role / .period / .task1
	Country   string
	Tech      []string
	Logo      string
	Gradient  string
}

var companyCards = []companyCard{
	{
		KeyPrefix: "companies.agentcloud",
		Country:   "🇺🇸",
		Tech:      []string{"React", "Scala", "AWS", "Terraform"},
		Logo:      "/static/img/brands/dacodes.webp",
		Gradient:  "gradient-a",
	},
	{
		KeyPrefix: "companies.outcoding",
		Country:   "🇺🇸",
		Tech:      []string{"NestJS", "Angular", "Azure", "Nx"},
		Logo:      "/static/img/brands/outcoding.svg",
		Gradient:  "gradient-b",
	},
	{
		KeyPrefix: "companies.nttdata",
		Country:   "🇵🇪",
		Tech:      []string{"Spring Boot", "Kafka", "Kubernetes", "Docker"},
		Logo:      "/static/img/brands/ntt-data.png",
		Gradient:  "gradient-c",
	},
}

var heroImages = []string{
	"/static/img/fullstack-hero.jpg",
	"/static/img/programmer-three-screens.jpg",
	"/static/img/mobile-dev-hero.jpg",
	"/static/img/devops-hero.jpg",
}

type aboutHighlight struct {
	TitleKey string
	DescKey  string
	Icon     string
}

var aboutHighlights = []aboutHighlight{
	{"about.highlight1.title", "about.highlight1.desc", "code"},
	{"about.highlight2.title", "about.highlight2.desc", "rocket"},
	{"about.highlight3.title", "about.highlight3.desc", "users"},
}
