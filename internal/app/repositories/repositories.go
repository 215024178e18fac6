package repositories

import (
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	ApplicationRepository  *ApplicationRepository
	ExamCenterRepository   *ExamCenterRepository
	BlogRepository         *BlogRepository
	GalleryRepository      *GalleryRepository
	SuccessStoryRepository *SuccessStoryRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		ExamCenterRepository:   NewExamCenterRepository(db),
		BlogRepository:         NewBlogRepository(db),
		GalleryRepository:      NewGalleryRepository(db),
		SuccessStoryRepository: NewSuccessStoryRepository(db),
	}
}

// selfColumns rewrites an aliased column list ("a.id, a.student_id, …")
// into bare column names for use in INSERT/UPDATE RETURNING clauses.
func selfColumns(cols string) string {
	return strings.ReplaceAll(cols, "a.", "")
}
