// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./person.go -destination=../mocks/mock_person_repository.go -package=mocks PersonRepositoryIface
//go:generate mockgen -source=./community.go -destination=../mocks/mock_community_repository.go -package=mocks CommunityRepositoryIface
//go:generate mockgen -source=./school.go -destination=../mocks/mock_school_repository.go -package=mocks SchoolRepositoryIface
