package repository

// Repositories bundles every repository interface.
type Repositories struct {
	User  UserRepository
	Token TokenRepository
	Spell SpellRepository
	Cache CacheRepository
}

// NewRepositories builds the repository collection.
func NewRepositories(
	userRepo UserRepository,
	tokenRepo TokenRepository,
	spellRepo SpellRepository,
	cacheRepo CacheRepository,
) *Repositories {
	return &Repositories{
		User:  userRepo,
		Token: tokenRepo,
		Spell: spellRepo,
		Cache: cacheRepo,
	}
}
