package auth_test

import (
	"context"

	"github.com/frahmantamala/facility-management/internal/auth"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Role Authorization", func() {
	Describe("RoleAllowed", func() {
		It("should allow a role present in the allow-list", func() {
			Expect(auth.RoleAllowed(auth.RoleManager, auth.WriterRoles())).To(BeTrue())
		})

		It("should deny a role absent from the allow-list", func() {
			Expect(auth.RoleAllowed(auth.RoleSales, auth.WriterRoles())).To(BeFalse())
		})

		It("should deny everything against an empty allow-list", func() {
			Expect(auth.RoleAllowed(auth.RoleAdmin, nil)).To(BeFalse())
		})
	})

	Describe("WriterRoles", func() {
		It("should contain exactly admin and manager", func() {
			Expect(auth.WriterRoles()).To(ConsistOf(auth.RoleAdmin, auth.RoleManager))
		})
	})

	Describe("ValidRole", func() {
		It("should accept every declared role", func() {
			for _, r := range []auth.Role{
				auth.RoleAdmin, auth.RoleManager, auth.RoleSales, auth.RoleMarketing,
				auth.RoleOperator, auth.RoleOperation, auth.RoleFinance, auth.RoleHR,
				auth.RoleSupport, auth.RoleUser,
			} {
				Expect(auth.ValidRole(r)).To(BeTrue(), "role %s", r)
			}
		})

		It("should reject unknown values", func() {
			Expect(auth.ValidRole("superuser")).To(BeFalse())
			Expect(auth.ValidRole("")).To(BeFalse())
		})
	})

	Describe("User", func() {
		It("should report admin status", func() {
			admin := &auth.User{ID: 1, Role: auth.RoleAdmin}
			viewer := &auth.User{ID: 2, Role: auth.RoleUser}
			Expect(admin.IsAdmin()).To(BeTrue())
			Expect(viewer.IsAdmin()).To(BeFalse())
		})

		It("should deny everything for a nil user", func() {
			var u *auth.User
			Expect(u.IsAdmin()).To(BeFalse())
			Expect(u.HasRole(auth.RoleAdmin)).To(BeFalse())
		})
	})

	Describe("Context round trip", func() {
		It("should store and retrieve the identity", func() {
			u := &auth.User{ID: 7, Username: "alice", Role: auth.RoleManager}
			ctx := auth.ContextWithUser(context.Background(), u)

			got, ok := auth.UserFromContext(ctx)
			Expect(ok).To(BeTrue())
			Expect(got).To(Equal(u))
		})

		It("should report absence on an empty context", func() {
			_, ok := auth.UserFromContext(context.Background())
			Expect(ok).To(BeFalse())
		})
	})
})
