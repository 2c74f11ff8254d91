package services_test

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/cynric/familymanagement-backend/internal/domain/entities"
	domainerrors "github.com/cynric/familymanagement-backend/internal/domain/errors"
	"github.com/cynric/familymanagement-backend/internal/infrastructure/security"
	"github.com/cynric/familymanagement-backend/internal/services"
)

func strPtr(s string) *string { return &s }

var _ = Describe("UserService", func() {
	var (
		ctx     context.Context
		repo    *fakeUserRepo
		uow     *fakeUnitOfWork
		cache   *fakeUserCache
		metrics *recordingMetrics
		service *services.UserService
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = newFakeUserRepo()
		uow = &fakeUnitOfWork{}
		cache = newFakeUserCache()
		metrics = &recordingMetrics{}
		service = services.NewUserService(repo, uow, security.NewBcryptHasher(bcrypt.MinCost), cache, metrics, discardLogger())
	})

	register := func(username string) *entities.User {
		user, err := service.Register(ctx, services.RegisterUserInput{Username: username, Password: "password123"})
		Expect(err).NotTo(HaveOccurred())
		return user
	}

	Describe("Register", func() {
		It("cria um MEMBER ativo com senha em hash", func() {
			user, err := service.Register(ctx, services.RegisterUserInput{
				Username:   "bob",
				Password:   "password123",
				Email:      "Bob@Example.com",
				FamilyRole: "Dad",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(user.ID).NotTo(Equal(uuid.Nil))
			Expect(user.IsMember()).To(BeTrue())
			Expect(user.IsActive()).To(BeTrue())
			Expect(user.Email.String()).To(Equal("bob@example.com"))
			Expect(user.PasswordHash).NotTo(Equal("password123"))
			Expect(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123"))).To(Succeed())
			Expect(user.CreatedAt).To(Equal(user.UpdatedAt))

			Expect(uow.transactions).To(Equal(1))
			Expect(metrics.registrations).To(Equal(1))
		})

		It("rejeita username duplicado", func() {
			register("bob")

			_, err := service.Register(ctx, services.RegisterUserInput{Username: "bob", Password: "another-pass"})
			Expect(err).To(MatchError(domainerrors.ErrUsernameAlreadyExists))
			Expect(metrics.registrations).To(Equal(1))
		})

		It("permite reutilizar o username de um usuário deletado", func() {
			old := register("bob")
			Expect(service.DeleteUser(ctx, old.ID, nil)).To(Succeed())

			user, err := service.Register(ctx, services.RegisterUserInput{Username: "bob", Password: "password123"})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(Equal(old.ID))
		})

		It("rejeita telefone já usado", func() {
			_, err := service.Register(ctx, services.RegisterUserInput{Username: "mom", Password: "password123", Phone: "13800000000"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Register(ctx, services.RegisterUserInput{Username: "dad", Password: "password123", Phone: "13800000000"})
			Expect(err).To(MatchError(domainerrors.ErrPhoneAlreadyExists))
		})

		DescribeTable("valida a entrada",
			func(input services.RegisterUserInput, field string) {
				_, err := service.Register(ctx, input)
				Expect(errors.Is(err, domainerrors.ErrInvalidInput)).To(BeTrue())

				var verrs validator.ValidationErrors
				Expect(errors.As(err, &verrs)).To(BeTrue())
				Expect(verrs[0].Field()).To(Equal(field))
			},
			Entry("username curto", services.RegisterUserInput{Username: "ab", Password: "password123"}, "Username"),
			Entry("senha curta", services.RegisterUserInput{Username: "alice", Password: "short"}, "Password"),
			Entry("email inválido", services.RegisterUserInput{Username: "alice", Password: "password123", Email: "nope"}, "Email"),
			Entry("senha acima de 72 bytes", services.RegisterUserInput{Username: "alice", Password: strings.Repeat("密", 30)}, "Password"),
		)

		It("aceita senha de exatamente 72 bytes", func() {
			user, err := service.Register(ctx, services.RegisterUserInput{Username: "alice", Password: strings.Repeat("密", 24)})
			Expect(err).NotTo(HaveOccurred())
			Expect(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(strings.Repeat("密", 24)))).To(Succeed())
		})

		It("invalida uma entrada antiga do cache com o mesmo username", func() {
			old := register("bob")
			Expect(service.DeleteUser(ctx, old.ID, nil)).To(Succeed())
			Expect(cache.Set(ctx, old)).To(Succeed())
			cache.invalidated = nil

			user, err := service.Register(ctx, services.RegisterUserInput{Username: "bob", Password: "password123"})
			Expect(err).NotTo(HaveOccurred())
			Expect(cache.invalidated).To(Equal([]string{"bob"}))

			found, err := service.FindByUsername(ctx, "bob")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal(user.ID))
		})

		It("propaga falhas do repositório", func() {
			repo.err = errors.New("connection reset")

			_, err := service.Register(ctx, services.RegisterUserInput{Username: "alice", Password: "password123"})
			Expect(err).To(MatchError("connection reset"))
		})
	})

	Describe("FindByUsername", func() {
		It("retorna nil sem erro quando não existe", func() {
			user, err := service.FindByUsername(ctx, "nonexistent")
			Expect(err).NotTo(HaveOccurred())
			Expect(user).To(BeNil())
			Expect(metrics.cacheLookups).To(Equal([]string{"miss"}))
		})

		It("usa o cache na segunda leitura", func() {
			created := register("alice")

			first, err := service.FindByUsername(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(first.ID).To(Equal(created.ID))

			calls := repo.findByUsernameCalls
			second, err := service.FindByUsername(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(second.ID).To(Equal(created.ID))
			Expect(repo.findByUsernameCalls).To(Equal(calls))
			Expect(metrics.cacheLookups).To(Equal([]string{"miss", "hit"}))
		})

		It("cai para o repositório quando o cache falha", func() {
			register("alice")
			cache.getErr = errors.New("redis down")

			user, err := service.FindByUsername(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(user).NotTo(BeNil())
			Expect(metrics.cacheLookups).To(ContainElement("error"))
		})

		It("propaga erro do repositório", func() {
			repo.err = errors.New("db down")

			_, err := service.FindByUsername(ctx, "alice")
			Expect(err).To(MatchError("db down"))
		})
	})

	Describe("GetUser e GetProfile", func() {
		It("GetUser retorna ErrUserNotFound para id desconhecido", func() {
			_, err := service.GetUser(ctx, uuid.New())
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})

		It("GetProfile resolve o username de quem criou", func() {
			admin := register("grandma")
			_, err := service.Register(ctx, services.RegisterUserInput{
				Username:  "grandson",
				Password:  "password123",
				CreatedBy: &admin.ID,
			})
			Expect(err).NotTo(HaveOccurred())

			profile, err := service.GetProfile(ctx, "grandson")
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.CreatedByUsername).To(Equal("grandma"))
		})

		It("GetProfile retorna ErrUserNotFound", func() {
			_, err := service.GetProfile(ctx, "nobody")
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})
	})

	Describe("UpdateProfile", func() {
		It("altera apenas os campos informados e invalida o cache", func() {
			user := register("alice")
			_, err := service.FindByUsername(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())

			actor := uuid.New()
			updated, err := service.UpdateProfile(ctx, user.ID, services.UpdateProfileInput{
				FamilyRole: strPtr("Mom"),
				AvatarURL:  strPtr("https://cdn.example.com/mom.png"),
			}, &actor)
			Expect(err).NotTo(HaveOccurred())

			Expect(updated.DisplayName()).To(Equal("Mom"))
			Expect(updated.AvatarURL).To(Equal("https://cdn.example.com/mom.png"))
			Expect(*updated.UpdatedBy).To(Equal(actor))
			Expect(cache.invalidated).To(Equal([]string{"alice", "alice"}))
		})

		It("rejeita telefone de outro usuário", func() {
			_, err := service.Register(ctx, services.RegisterUserInput{Username: "mom", Password: "password123", Phone: "13800000000"})
			Expect(err).NotTo(HaveOccurred())
			dad := register("dad")

			_, err = service.UpdateProfile(ctx, dad.ID, services.UpdateProfileInput{Phone: strPtr("13800000000")}, nil)
			Expect(err).To(MatchError(domainerrors.ErrPhoneAlreadyExists))
		})

		It("rejeita URL de avatar inválida", func() {
			user := register("alice")

			_, err := service.UpdateProfile(ctx, user.ID, services.UpdateProfileInput{AvatarURL: strPtr("not a url")}, nil)
			Expect(errors.Is(err, domainerrors.ErrInvalidInput)).To(BeTrue())
		})

		It("retorna ErrUserNotFound para id desconhecido", func() {
			_, err := service.UpdateProfile(ctx, uuid.New(), services.UpdateProfileInput{}, nil)
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})
	})

	Describe("DeleteUser", func() {
		It("faz soft delete e esconde o usuário", func() {
			user := register("alice")
			cache.invalidated = nil

			Expect(service.DeleteUser(ctx, user.ID, nil)).To(Succeed())

			found, err := service.FindByUsername(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
			Expect(cache.invalidated).To(Equal([]string{"alice"}))
		})

		It("segundo delete retorna ErrUserNotFound", func() {
			user := register("alice")
			Expect(service.DeleteUser(ctx, user.ID, nil)).To(Succeed())

			Expect(service.DeleteUser(ctx, user.ID, nil)).To(MatchError(domainerrors.ErrUserNotFound))
		})
	})
})
