// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./quest.go -destination=../mocks/mock_quest_repository.go -package=mocks QuestRepositoryIface
//go:generate mockgen -source=./curation.go -destination=../mocks/mock_curation_repository.go -package=mocks CurationRepositoryIface
