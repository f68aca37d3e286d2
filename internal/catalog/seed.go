package catalog

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Shreyash123-code/AICTE-project1/internal/models"
)

type seedSubject struct {
	name string
	icon string
}

type seedBranch struct {
	name     string
	icon     string
	subjects []seedSubject
}

var engineeringData = []seedBranch{
	{
		name: "Computer Science & Engineering (CSE)", icon: "💻",
		subjects: []seedSubject{
			{"Data Structures & Algorithms", "📊"},
			{"Operating Systems", "🖥️"},
			{"Database Management Systems", "🗄️"},
			{"Computer Networks", "🌐"},
			{"Object Oriented Programming", "🧱"},
			{"Software Engineering", "⚙️"},
			{"Artificial Intelligence", "🤖"},
			{"Machine Learning", "🧠"},
			{"Web Development", "🌍"},
			{"Compiler Design", "🔧"},
			{"Theory of Computation", "📐"},
			{"Cyber Security", "🔒"},
			{"Cloud Computing", "☁️"},
			{"Computer Architecture", "🏗️"},
			{"Discrete Mathematics", "🔢"},
		},
	},
	{
		name: "Electronics & Communication (ECE)", icon: "📡",
		subjects: []seedSubject{
			{"Analog Electronics", "📻"},
			{"Digital Electronics", "💡"},
			{"Signals & Systems", "📈"},
			{"Electromagnetic Theory", "🧲"},
			{"Communication Systems", "📡"},
			{"VLSI Design", "🔌"},
			{"Microprocessors & Microcontrollers", "🧮"},
			{"Control Systems", "🎛️"},
			{"Antenna & Wave Propagation", "📶"},
			{"Digital Signal Processing", "📊"},
			{"Embedded Systems", "🤖"},
			{"Electronic Circuit Design", "⚡"},
		},
	},
	{
		name: "Mechanical Engineering (ME)", icon: "🔩",
		subjects: []seedSubject{
			{"Engineering Mechanics", "⚖️"},
			{"Thermodynamics", "🌡️"},
			{"Fluid Mechanics", "💧"},
			{"Manufacturing Processes", "🏭"},
			{"Strength of Materials", "💪"},
			{"Machine Design", "⚙️"},
			{"Heat Transfer", "🔥"},
			{"Internal Combustion Engines", "🚗"},
			{"Automobile Engineering", "🚙"},
			{"Robotics", "🤖"},
			{"CAD/CAM", "📐"},
			{"Industrial Engineering", "🏗️"},
		},
	},
	{
		name: "Electrical Engineering (EE)", icon: "⚡",
		subjects: []seedSubject{
			{"Circuit Theory", "🔌"},
			{"Electrical Machines", "🏭"},
			{"Power Systems", "💡"},
			{"Power Electronics", "⚡"},
			{"Control Systems", "🎛️"},
			{"Electrical Measurements", "📏"},
			{"Switchgear & Protection", "🛡️"},
			{"Renewable Energy Systems", "🌞"},
			{"High Voltage Engineering", "🔋"},
			{"Electrical Drives", "🔄"},
		},
	},
	{
		name: "Civil Engineering (CE)", icon: "🏗️",
		subjects: []seedSubject{
			{"Structural Analysis", "🏛️"},
			{"Surveying", "🗺️"},
			{"Geotechnical Engineering", "⛰️"},
			{"Concrete Technology", "🧱"},
			{"Transportation Engineering", "🛣️"},
			{"Environmental Engineering", "🌿"},
			{"Hydraulics & Water Resources", "💧"},
			{"Construction Management", "👷"},
			{"Steel Structures", "🏗️"},
			{"Earthquake Engineering", "🌍"},
		},
	},
	{
		name: "Information Technology (IT)", icon: "🖥️",
		subjects: []seedSubject{
			{"Data Structures & Algorithms", "📊"},
			{"Database Management Systems", "🗄️"},
			{"Computer Networks", "🌐"},
			{"Web Technologies", "🌍"},
			{"Software Engineering", "⚙️"},
			{"Information Security", "🔐"},
			{"Data Mining & Warehousing", "⛏️"},
			{"Mobile Application Development", "📱"},
			{"Big Data Analytics", "📊"},
			{"Internet of Things (IoT)", "🌐"},
		},
	},
	{
		name: "Artificial Intelligence & Data Science (AI&DS)", icon: "🤖",
		subjects: []seedSubject{
			{"Artificial Intelligence", "🤖"},
			{"Machine Learning", "🧠"},
			{"Deep Learning", "🔬"},
			{"Natural Language Processing", "💬"},
			{"Computer Vision", "👁️"},
			{"Data Science", "📊"},
			{"Big Data Analytics", "📈"},
			{"Statistics & Probability", "🎲"},
			{"Python Programming", "🐍"},
			{"Neural Networks", "🧬"},
		},
	},
	{
		name: "Common / First Year", icon: "📚",
		subjects: []seedSubject{
			{"Engineering Mathematics I", "📐"},
			{"Engineering Mathematics II", "📐"},
			{"Engineering Mathematics III", "📐"},
			{"Engineering Physics", "🔬"},
			{"Engineering Chemistry", "🧪"},
			{"Basic Electrical Engineering", "⚡"},
			{"Basic Electronics", "💡"},
			{"Engineering Graphics", "📏"},
			{"Programming in C", "💻"},
			{"Communication Skills", "🗣️"},
			{"Environmental Studies", "🌿"},
			{"Engineering Mechanics", "⚖️"},
		},
	},
}

// Seed 灌入学科目录，幂等，重复跑只补缺的
func Seed(db *gorm.DB) error {
	for _, b := range engineeringData {
		branch := models.Branch{Name: b.name, Icon: b.icon}
		if err := db.Where("name = ?", b.name).FirstOrCreate(&branch).Error; err != nil {
			return err
		}

		for _, s := range b.subjects {
			subject := models.Subject{Name: s.name, BranchID: &branch.ID, Icon: s.icon}
			if err := db.Where("name = ? AND branch_id = ?", s.name, branch.ID).
				FirstOrCreate(&subject).Error; err != nil {
				return err
			}
		}
		zap.L().Info("seeded branch", zap.String("branch", b.name), zap.Int("subjects", len(b.subjects)))
	}
	return nil
}
