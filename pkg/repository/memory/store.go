package memory

// Store собирает по одному экземпляру каждого репозитория.
type Store struct {
	Users       *UserRepository
	Links       *LinkRepository
	Projects    *ProjectRepository
	Skills      *SkillRepository
	Experiences *ExperienceRepository
	Blogs       *BlogRepository
	Revoker     *Revoker
}

func NewStore() *Store {
	return &Store{
		Users:       NewUserRepository(),
		Links:       NewLinkRepository(),
		Projects:    NewProjectRepository(),
		Skills:      NewSkillRepository(),
		Experiences: NewExperienceRepository(),
		Blogs:       NewBlogRepository(),
		Revoker:     NewRevoker(),
	}
}
