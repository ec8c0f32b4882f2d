package auth_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/kogocampus/course-scraper/internal/auth"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("basic authentication", func() {
	Context("admin credentials", func() {
		It("accepts the configured pair", func() {
			authenticator, err := auth.NewBasicAuthenticator("admin", "secret")
			Expect(err).To(BeNil())

			identity, err := authenticator.Authenticate("admin", "secret")
			Expect(err).To(BeNil())
			Expect(identity.Kind).To(Equal(auth.KindAdmin))
			Expect(identity.Username).To(Equal("admin"))
			Expect(identity.IsAdmin()).To(BeTrue())
		})

		It("rejects a wrong password with the same error as a wrong username", func() {
			authenticator, err := auth.NewBasicAuthenticator("admin", "secret")
			Expect(err).To(BeNil())

			_, badPassword := authenticator.Authenticate("admin", "nope")
			_, badUsername := authenticator.Authenticate("nope", "secret")
			Expect(badPassword).To(MatchError(auth.ErrBadCredentials))
			Expect(badUsername).To(MatchError(auth.ErrBadCredentials))
			Expect(badPassword.Error()).To(Equal(badUsername.Error()))
		})
	})

	Context("middleware", func() {
		var (
			authenticator *auth.BasicAuthenticator
			next          http.Handler
		)

		BeforeEach(func() {
			var err error
			authenticator, err = auth.NewBasicAuthenticator("admin", "secret")
			Expect(err).To(BeNil())
			next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				identity := auth.MustHaveIdentity(r.Context())
				Expect(identity.Kind).To(Equal(auth.KindAdmin))
				w.WriteHeader(http.StatusOK)
			})
		})

		It("passes authenticated requests through with the identity set", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/school-entries", nil)
			req.SetBasicAuth("admin", "secret")
			rec := httptest.NewRecorder()

			authenticator.Authenticator(next).ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("challenges requests without credentials", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/school-entries", nil)
			rec := httptest.NewRecorder()

			authenticator.Authenticator(next).ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(rec.Header().Get("WWW-Authenticate")).To(ContainSubstring("Basic"))
		})

		It("challenges requests with bad credentials", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/school-entries", nil)
			req.SetBasicAuth("admin", "wrong")
			rec := httptest.NewRecorder()

			authenticator.Authenticator(next).ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(rec.Header().Get("WWW-Authenticate")).To(ContainSubstring("Basic"))
		})
	})
})
