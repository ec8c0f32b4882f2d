package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/kogocampus/course-scraper/internal/auth"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func newStudentManager(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Expect(r.URL.Path).To(Equal("/student/authenticate"))
		Expect(r.URL.Query().Get("grant_type")).To(Equal("access_token"))
		Expect(r.Header.Get("Authorization")).To(HavePrefix("Bearer "))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

var _ = Describe("student authentication", func() {
	Context("token verification", func() {
		It("accepts a token the student manager accepts", func() {
			server := newStudentManager(http.StatusOK, `{"userdata":{"username":"batman"}}`)
			defer server.Close()

			authenticator, err := auth.NewStudentAuthenticator(server.URL + "/student/")
			Expect(err).To(BeNil())

			identity, err := authenticator.Authenticate(context.Background(), "some-token")
			Expect(err).To(BeNil())
			Expect(identity.Kind).To(Equal(auth.KindStudent))
			Expect(identity.Username).To(Equal("batman"))
			Expect(identity.Claims).To(HaveKey("userdata"))
		})

		It("rejects a token the student manager rejects", func() {
			server := newStudentManager(http.StatusUnauthorized, `{}`)
			defer server.Close()

			authenticator, err := auth.NewStudentAuthenticator(server.URL + "/student/")
			Expect(err).To(BeNil())

			_, err = authenticator.Authenticate(context.Background(), "bad-token")
			Expect(err).To(BeAssignableToTypeOf(&auth.ErrInvalidToken{}))
		})

		It("reports an undecodable acceptance body as malformed, not invalid", func() {
			server := newStudentManager(http.StatusOK, `<html>not json</html>`)
			defer server.Close()

			authenticator, err := auth.NewStudentAuthenticator(server.URL + "/student/")
			Expect(err).To(BeNil())

			_, err = authenticator.Authenticate(context.Background(), "some-token")
			Expect(err).To(BeAssignableToTypeOf(&auth.ErrMalformedIdentity{}))
			Expect(err.Error()).To(ContainSubstring("malformed response"))
		})

		It("reports an unreachable student manager distinctly", func() {
			server := newStudentManager(http.StatusOK, `{}`)
			server.Close()

			authenticator, err := auth.NewStudentAuthenticator(server.URL + "/student/")
			Expect(err).To(BeNil())

			_, err = authenticator.Authenticate(context.Background(), "any-token")
			Expect(err).To(BeAssignableToTypeOf(&auth.ErrIdentityUnreachable{}))
		})
	})

	Context("middleware", func() {
		var next http.Handler

		BeforeEach(func() {
			next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})

		It("maps a rejected token to 401", func() {
			server := newStudentManager(http.StatusForbidden, `{}`)
			defer server.Close()

			authenticator, err := auth.NewStudentAuthenticator(server.URL + "/student/")
			Expect(err).To(BeNil())

			req := httptest.NewRequest(http.MethodGet, "/api/course-listing/SFU", nil)
			req.Header.Set("Authorization", "Bearer bad-token")
			rec := httptest.NewRecorder()

			authenticator.Authenticator(next).ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("maps an unreachable student manager to 502", func() {
			server := newStudentManager(http.StatusOK, `{}`)
			server.Close()

			authenticator, err := auth.NewStudentAuthenticator(server.URL + "/student/")
			Expect(err).To(BeNil())

			req := httptest.NewRequest(http.MethodGet, "/api/course-listing/SFU", nil)
			req.Header.Set("Authorization", "Bearer any-token")
			rec := httptest.NewRecorder()

			authenticator.Authenticator(next).ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusBadGateway))
		})

		It("maps a malformed student manager response to 502", func() {
			server := newStudentManager(http.StatusOK, `<html>not json</html>`)
			defer server.Close()

			authenticator, err := auth.NewStudentAuthenticator(server.URL + "/student/")
			Expect(err).To(BeNil())

			req := httptest.NewRequest(http.MethodGet, "/api/course-listing/SFU", nil)
			req.Header.Set("Authorization", "Bearer any-token")
			rec := httptest.NewRecorder()

			authenticator.Authenticator(next).ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusBadGateway))
		})

		It("rejects requests without a bearer token", func() {
			authenticator, err := auth.NewStudentAuthenticator("http://localhost:1/student/")
			Expect(err).To(BeNil())

			req := httptest.NewRequest(http.MethodGet, "/api/course-listing/SFU", nil)
			rec := httptest.NewRecorder()

			authenticator.Authenticator(next).ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("lets an established admin identity through without a token", func() {
			authenticator, err := auth.NewStudentAuthenticator("http://localhost:1/student/")
			Expect(err).To(BeNil())

			req := httptest.NewRequest(http.MethodGet, "/api/admin/test-course-listing/SFU", nil)
			ctx := auth.NewIdentityContext(req.Context(), auth.NewAdminIdentity("admin"))
			rec := httptest.NewRecorder()

			authenticator.Authenticator(next).ServeHTTP(rec, req.WithContext(ctx))
			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})
})
