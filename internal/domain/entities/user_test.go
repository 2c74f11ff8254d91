package entities_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cynric/familymanagement-backend/internal/domain/entities"
)

var _ = Describe("User", func() {
	var user *entities.User

	BeforeEach(func() {
		user = entities.NewUser("alice", "$2a$10$hash")
	})

	Describe("DisplayName", func() {
		It("usa o username quando o papel na família está em branco", func() {
			user.FamilyRole = "  "
			Expect(user.DisplayName()).To(Equal("alice"))
		})

		It("usa o username quando o papel na família está vazio", func() {
			Expect(user.DisplayName()).To(Equal("alice"))
		})

		It("usa o papel na família quando preenchido", func() {
			user.FamilyRole = "Mom"
			Expect(user.DisplayName()).To(Equal("Mom"))

			user.Username = "someone-else"
			Expect(user.DisplayName()).To(Equal("Mom"))
		})
	})

	Describe("IsDeleted", func() {
		It("é falso sem deletedAt", func() {
			Expect(user.IsDeleted()).To(BeFalse())
		})

		It("é verdadeiro após SoftDelete", func() {
			user.SoftDelete(time.Now())
			Expect(user.IsDeleted()).To(BeTrue())
		})

		It("não sobrescreve a data original", func() {
			first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
			user.SoftDelete(first)
			user.SoftDelete(first.Add(time.Hour))
			Expect(*user.DeletedAt).To(Equal(first))
		})
	})

	Describe("predicados", func() {
		It("novo usuário é MEMBER e ACTIVE", func() {
			Expect(user.IsMember()).To(BeTrue())
			Expect(user.IsActive()).To(BeTrue())
		})

		It("IsActive é falso quando DISABLED", func() {
			user.Status = entities.StatusDisabled
			Expect(user.IsActive()).To(BeFalse())
		})

		DescribeTable("predicados de papel são mutuamente exclusivos",
			func(role entities.UserRole, admin, member, guest bool) {
				user.Role = role
				Expect(user.IsAdmin()).To(Equal(admin))
				Expect(user.IsMember()).To(Equal(member))
				Expect(user.IsGuest()).To(Equal(guest))
			},
			Entry("ADMIN", entities.RoleAdmin, true, false, false),
			Entry("MEMBER", entities.RoleMember, false, true, false),
			Entry("GUEST", entities.RoleGuest, false, false, true),
		)
	})

	Describe("Validate", func() {
		It("aceita um usuário completo", func() {
			Expect(user.Validate()).To(Succeed())
		})

		It("exige username", func() {
			user.Username = " "
			Expect(user.Validate()).To(MatchError("username is required"))
		})

		It("exige papel definido", func() {
			user.Role = entities.UserRole{}
			Expect(user.Validate()).To(MatchError("role is required"))
		})

		It("exige estado definido", func() {
			user.Status = entities.UserStatus{}
			Expect(user.Validate()).To(MatchError("status is required"))
		})
	})
})
