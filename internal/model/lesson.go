package model

// Lesson 课程条目，来源于平台课程目录或内置目录
// swagger:model
type Lesson struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`
	Duration    int    `json:"duration,omitempty"` // 分钟
}

// DefaultLessonPool 内置课程目录，生成计划时按天序轮换取课。
// 与平台前端的内置目录保持一致，后端不可达时仍可离线生成。
func DefaultLessonPool() []Lesson {
	return []Lesson{
		{ID: "lesson-1", Title: "Introduction to Machine Learning", Category: "Data Science", Difficulty: "beginner", Duration: 15},
		{ID: "lesson-2", Title: "Advanced React Patterns", Category: "Web Development", Difficulty: "advanced", Duration: 30},
		{ID: "lesson-3", Title: "UX Design Principles", Category: "Design", Difficulty: "intermediate", Duration: 20},
		{ID: "lesson-4", Title: "SQL Database Optimization", Category: "Database", Difficulty: "intermediate", Duration: 25},
		{ID: "lesson-5", Title: "Python for Data Analysis", Category: "Data Science", Difficulty: "beginner", Duration: 35},
		{ID: "lesson-6", Title: "Cloud Architecture Patterns", Category: "Cloud Computing", Difficulty: "advanced", Duration: 45},
	}
}
