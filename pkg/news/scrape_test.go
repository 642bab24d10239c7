package news

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestScrapeContent(t *testing.T) {
	page := `<html><body>
		<nav><a href="/">home</a></nav>
		<article>
			<p>First paragraph of the story.</p>
			<div><p>Second <b>paragraph</b> with markup.</p></div>
		</article>
		<footer><span>no paragraphs here</span></footer>
	</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer srv.Close()

	s := NewScraper()
	content, err := s.Content(srv.URL)

	assert.Equal(t, nil, err)
	assert.Equal(t, "First paragraph of the story.\nSecond paragraph with markup.", content)
}

func TestScrapeContentNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s := NewScraper()
	_, err := s.Content(srv.URL)

	assert.NotEqual(t, nil, err)
}
