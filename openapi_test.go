package main_test

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("OpenAPI document", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("should be a valid OpenAPI 3 document", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("should describe every API surface the router exposes", func() {
		for _, path := range []string{
			"/ping",
			"/health",
			"/login",
			"/register",
			"/verify-token",
			"/profile",
			"/users",
			"/users/{id}",
			"/spaces/statistics",
			"/spaces/{kind}",
			"/spaces/{kind}/{id}",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})

	It("should declare bearer authentication", func() {
		scheme := doc.Components.SecuritySchemes["bearerAuth"]
		Expect(scheme).NotTo(BeNil())
		Expect(scheme.Value.Scheme).To(Equal("bearer"))
	})
})
