package entities_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cynric/familymanagement-backend/internal/domain/entities"
)

var _ = Describe("UserRole", func() {
	DescribeTable("UserRoleFromCode com códigos conhecidos",
		func(code int, expected entities.UserRole) {
			role := entities.UserRoleFromCode(code)
			Expect(role).To(Equal(expected))
			Expect(role.Code()).To(Equal(code))
		},
		Entry("0 é ADMIN", 0, entities.RoleAdmin),
		Entry("1 é MEMBER", 1, entities.RoleMember),
		Entry("2 é GUEST", 2, entities.RoleGuest),
	)

	DescribeTable("UserRoleFromCode usa MEMBER para códigos desconhecidos",
		func(code int) {
			Expect(entities.UserRoleFromCode(code)).To(Equal(entities.RoleMember))
		},
		Entry("negativo", -1),
		Entry("logo após o último", 3),
		Entry("muito grande", 999),
	)

	It("expõe nome e descrição", func() {
		Expect(entities.RoleAdmin.Name()).To(Equal("超级管理员"))
		Expect(entities.RoleGuest.Description()).To(Equal("只有只读权限"))
		Expect(entities.RoleMember.String()).To(Equal("MEMBER"))
	})

	It("serializa como identificador em JSON e volta", func() {
		data, err := json.Marshal(entities.RoleGuest)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal(`"GUEST"`))

		var role entities.UserRole
		Expect(json.Unmarshal(data, &role)).To(Succeed())
		Expect(role).To(Equal(entities.RoleGuest))
	})

	It("rejeita identificador desconhecido", func() {
		_, err := entities.ParseUserRole("OWNER")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("UserStatus", func() {
	DescribeTable("UserStatusFromCode",
		func(code int, expected entities.UserStatus) {
			Expect(entities.UserStatusFromCode(code)).To(Equal(expected))
		},
		Entry("0 é ACTIVE", 0, entities.StatusActive),
		Entry("1 é DISABLED", 1, entities.StatusDisabled),
		Entry("2 cai no padrão ACTIVE", 2, entities.StatusActive),
		Entry("-5 cai no padrão ACTIVE", -5, entities.StatusActive),
	)

	It("expõe nome e descrição", func() {
		Expect(entities.StatusDisabled.Name()).To(Equal("禁用"))
		Expect(entities.StatusActive.Description()).To(Equal("账户正常使用"))
	})

	It("faz parse do identificador", func() {
		status, err := entities.ParseUserStatus("DISABLED")
		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(entities.StatusDisabled))
	})
})
