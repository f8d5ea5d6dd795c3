package seed

import "jobboard/internal/core/domain/model/vacancy"

const (
	adminUserID   = "3f8c1a52-6a0e-4b0a-9f5d-8a1f0c2d4e6b"
	adminUsername = "admin"
	adminEmail    = "appAdmin@example.com"
	adminPhone    = "+1234567890"
)

type vacancyEntry struct {
	id                   string
	title                string
	description          string
	candidateDescription string
	position             string
	salaryMin            float64
	salaryMax            float64
	workMode             vacancy.WorkMode
	livingConditions     string
}

type companyEntry struct {
	userID          string
	companyID       string
	username        string
	email           string
	phone           string
	password        string
	selfDescription string
	location        string
	vacancies       []vacancyEntry
}

// companyCatalog returns the starter set of companies and vacancies.
// Identifiers are fixed so repeated seeding resolves to the same rows.
func companyCatalog() []companyEntry {
	return []companyEntry{
		{
			userID:          "30e67072-67cd-4a8f-a798-2e83d32a96e3",
			companyID:       "b8f1d9a1-9bb8-47b6-be20-93f20cf5a73a",
			username:        "GlobalTech",
			email:           "info@globaltech.com",
			phone:           "+1-555-123-4567",
			password:        "GloTech@1234",
			selfDescription: "GlobalTech is a pioneering technology firm reimagining the digital future.",
			location:        "San Francisco, CA",
			vacancies: []vacancyEntry{
				{
					id:                   "a3f98c7e-74b3-49eb-9e4d-93e4b80289fa",
					title:                "Software Engineer",
					description:          "Design, build and maintain scalable cloud-based services in a microservices architecture.",
					candidateDescription: "Proven backend expertise with modern cloud services and strong collaboration skills.",
					position:             "Backend Software Specialist",
					salaryMin:            90000,
					salaryMax:            130000,
					workMode:             vacancy.WorkModeRemote,
					livingConditions:     "Modern workspace with flexible remote options.",
				},
				{
					id:                   "7f2d3c11-8d85-4eba-b800-3a877a680d45",
					title:                "Cloud Architect",
					description:          "Lead the design and deployment of advanced cloud infrastructures with a focus on scalability and security.",
					candidateDescription: "Hands-on experience in cloud architecture and enterprise infrastructure design.",
					position:             "Enterprise Cloud Strategist",
					salaryMin:            120000,
					salaryMax:            160000,
					workMode:             vacancy.WorkModeOther,
					livingConditions:     "Innovative environment mixing remote flexibility with office collaboration.",
				},
				{
					id:                   "ce5bf91d-5b32-4995-8dfc-f2cab4a0f1d3",
					title:                "DevOps Engineer",
					description:          "Automate deployment pipelines and strengthen continuous integration across the platform.",
					candidateDescription: "Experienced with Docker, Kubernetes and CI/CD pipelines, strong scripting abilities.",
					position:             "Automation & Deployment Engineer",
					salaryMin:            85000,
					salaryMax:            125000,
					workMode:             vacancy.WorkModeRemote,
					livingConditions:     "Hybrid setup combining remote work with modern office spaces.",
				},
			},
		},
		{
			userID:          "d4c437e1-2f68-4f9b-9c54-0b3c76b6a12f",
			companyID:       "9c5b11e1-f2d4-4def-91aa-12b6c9b8f3c7",
			username:        "InnovateXSystems",
			email:           "info@innovatex.com",
			phone:           "+1-555-234-5678",
			password:        "Innov8#XSys2025",
			selfDescription: "At InnovateX Systems, innovation meets excellence in developing state-of-the-art IT solutions.",
			location:        "Austin, TX",
			vacancies: []vacancyEntry{
				{
					id:                   "e3b2890f-5a6d-4d6a-bc0f-3f45a7e60f4c",
					title:                "Full Stack Developer",
					description:          "Design and build robust web applications with modern frontend and backend frameworks.",
					candidateDescription: "Fluent in modern web frameworks with strong problem-solving abilities.",
					position:             "Cross-Platform Web Creator",
					salaryMin:            100000,
					salaryMax:            140000,
					workMode:             vacancy.WorkModeOffice,
					livingConditions:     "Dynamic workspace fostering creativity in a collaborative office.",
				},
				{
					id:                   "f7a1b3d9-4e5c-4d8e-b1c3-df2a9e5f6b7c",
					title:                "Machine Learning Engineer",
					description:          "Develop intelligent algorithms and predictive models combining data analytics with applied research.",
					candidateDescription: "Expertise in machine learning frameworks and statistical modeling in real projects.",
					position:             "Predictive Systems Designer",
					salaryMin:            115000,
					salaryMax:            155000,
					workMode:             vacancy.WorkModeOther,
					livingConditions:     "Futuristic workspace with cutting-edge tools.",
				},
				{
					id:                   "1a2b3c4d-5e6f-4791-a2b3-c4d5e6f789ab",
					title:                "Cybersecurity Analyst",
					description:          "Safeguard digital assets by detecting threats, assessing vulnerabilities and hardening systems.",
					candidateDescription: "Expertise in risk analysis, security frameworks and incident response.",
					position:             "Digital Security Consultant",
					salaryMin:            90000,
					salaryMax:            130000,
					workMode:             vacancy.WorkModeOffice,
					livingConditions:     "Secure, modern environment focused on advanced security practice.",
				},
			},
		},
		{
			userID:          "ac1f4e25-7b8d-4c2e-9d6e-4f3c2b1a0d9e",
			companyID:       "d0e1f2c3-b4a5-6d7e-8f90-1a2b3c4d5e6f",
			username:        "NextGenSolutions",
			email:           "info@nextgensolutions.com",
			phone:           "+1-555-345-6789",
			password:        "NextGen!Passw0rd",
			selfDescription: "NextGen Solutions is dedicated to driving business transformation with innovative technology.",
			location:        "New York, NY",
			vacancies: []vacancyEntry{
				{
					id:                   "b1c2d3e4-f5a6-4789-abcd-1234567890ab",
					title:                "Data Scientist",
					description:          "Transform complex datasets into actionable insights and build predictive models for strategic initiatives.",
					candidateDescription: "Expert in data mining, statistical analysis and machine learning.",
					position:             "Insight & Analytics Expert",
					salaryMin:            105000,
					salaryMax:            145000,
					workMode:             vacancy.WorkModeOther,
					livingConditions:     "Vibrant environment combining dynamic office spaces with flexible work.",
				},
				{
					id:                   "c2d3e4f5-a6b7-489c-bcde-234567890abc",
					title:                "Software Developer",
					description:          "Develop high-quality software from concept to deployment in a fast-paced, collaborative setting.",
					candidateDescription: "Strong background in coding practice, agile development and lifecycle management.",
					position:             "Code Development Engineer",
					salaryMin:            95000,
					salaryMax:            135000,
					workMode:             vacancy.WorkModeOffice,
					livingConditions:     "Energetic workplace focused on continuous learning and teamwork.",
				},
				{
					id:                   "d3e4f5a6-b7c8-49ad-bcde-34567890abcd",
					title:                "IT Project Manager",
					description:          "Lead technology initiatives from planning to execution, coordinating cross-functional teams and budgets.",
					candidateDescription: "Strong leadership, clear communication and experience managing complex IT projects.",
					position:             "Technology Initiatives Lead",
					salaryMin:            110000,
					salaryMax:            150000,
					workMode:             vacancy.WorkModeOffice,
					livingConditions:     "Collaborative environment emphasizing strategic thinking.",
				},
			},
		},
		{
			userID:          "e9f12345-89ab-4cde-8f01-23456789abcd",
			companyID:       "f0a1b2c3-d4e5-6789-abcd-ef0123456789",
			username:        "CyberNovaInnovations",
			email:           "info@cybernovainnovations.com",
			phone:           "+1-555-456-7890",
			password:        "CyberN0va!2025",
			selfDescription: "CyberNova Innovations pioneers in digital security and cutting-edge software development solutions.",
			location:        "Los Angeles, CA",
			vacancies: []vacancyEntry{
				{
					id:                   "12345678-90ab-cdef-1234-567890abcdef",
					title:                "Security Analyst",
					description:          "Monitor systems continuously, assess risk and implement proactive measures protecting sensitive data.",
					candidateDescription: "In-depth cybersecurity knowledge with proficiency in threat detection.",
					position:             "Cybersecurity Intelligence Specialist",
					salaryMin:            95000,
					salaryMax:            125000,
					workMode:             vacancy.WorkModeOffice,
					livingConditions:     "Modern office space with advanced infrastructure.",
				},
				{
					id:                   "abcdef12-3456-7890-abcd-ef1234567890",
					title:                "Backend Engineer",
					description:          "Develop robust server-side applications and microservices, optimizing performance and integrating APIs.",
					candidateDescription: "Strong skills in server-side languages, relational databases and cloud technologies.",
					position:             "Cloud Services Backend Engineer",
					salaryMin:            90000,
					salaryMax:            120000,
					workMode:             vacancy.WorkModeRemote,
					livingConditions:     "Flexible environment with remote work and occasional in-office collaboration.",
				},
				{
					id:                   "fedcba98-7654-3210-fedc-ba9876543210",
					title:                "Product Manager",
					description:          "Drive the strategy and roadmap of digital products, leading cross-functional delivery teams.",
					candidateDescription: "Agile product management experience with a strategic mindset.",
					position:             "Digital Products Strategist",
					salaryMin:            105000,
					salaryMax:            140000,
					workMode:             vacancy.WorkModeOther,
					livingConditions:     "Dynamic workspace with opportunities for professional growth.",
				},
			},
		},
		{
			userID:          "a1b2c3d4-e5f6-4789-abcd-abcdef012345",
			companyID:       "b2c3d4e5-f6a7-4890-bcde-fedcba987654",
			username:        "AICoreDynamics",
			email:           "info@aicoredynamics.com",
			phone:           "+1-555-567-8901",
			password:        "AIC0re$Dyn2025",
			selfDescription: "AICore Dynamics is a leading innovator in artificial intelligence solutions for cognitive computing.",
			location:        "Boston, MA",
			vacancies: []vacancyEntry{
				{
					id:                   "c3d4e5f6-a7b8-49c0-bdef-0123456789ab",
					title:                "AI Research Engineer",
					description:          "Develop pioneering algorithms and deep learning models, designing neural network architectures.",
					candidateDescription: "Strong expertise in machine learning frameworks and deep learning techniques.",
					position:             "Deep Learning Research Engineer",
					salaryMin:            120000,
					salaryMax:            170000,
					workMode:             vacancy.WorkModeRemote,
					livingConditions:     "Flexible remote work with state-of-the-art research facilities.",
				},
				{
					id:                   "d4e5f6a7-b8c9-40de-abcd-1234567890ac",
					title:                "Backend Developer",
					description:          "Build the services that power large-scale model training and inference workloads.",
					candidateDescription: "Experience with distributed systems and high-throughput APIs.",
					position:             "Platform Backend Developer",
					salaryMin:            100000,
					salaryMax:            140000,
					workMode:             vacancy.WorkModeOffice,
					livingConditions:     "Research campus with collaborative engineering spaces.",
				},
				{
					id:                   "e5f6a7b8-c9d0-41ef-bcde-234567890abd",
					title:                "MLOps Engineer",
					description:          "Operate and automate the model lifecycle from experiment tracking to production deployment.",
					candidateDescription: "Familiar with container orchestration and model-serving infrastructure.",
					position:             "Machine Learning Operations Engineer",
					salaryMin:            110000,
					salaryMax:            150000,
					workMode:             vacancy.WorkModeOther,
					livingConditions:     "Hybrid arrangement with dedicated lab days.",
				},
			},
		},
	}
}
