package swagger_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/slate/internal/adapters/http/swagger"
	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/yaml.v3"
)

func TestRegister(t *testing.T) {
	Convey("Given a mux with the OpenAPI route", t, func() {
		mux := http.NewServeMux()
		swagger.Register(mux)

		Convey("When fetching the document", func() {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

			Convey("Then it is served as YAML", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldStartWith, "application/yaml")
				So(w.Body.Len(), ShouldEqual, len(swagger.OpenAPI))
			})
		})

		Convey("Then the document describes every API route", func() {
			var doc struct {
				OpenAPI string         `yaml:"openapi"`
				Paths   map[string]any `yaml:"paths"`
			}
			So(yaml.Unmarshal(swagger.OpenAPI, &doc), ShouldBeNil)
			So(doc.OpenAPI, ShouldStartWith, "3.")
			for _, p := range []string{"/healthz", "/stats", "/rankings", "/rank/{team_id}", "/matchups"} {
				So(doc.Paths, ShouldContainKey, p)
			}
		})
	})

	Convey("Given a nil mux", t, func() {
		So(func() { swagger.Register(nil) }, ShouldPanic)
	})
}
