package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"lightwork-server/models"
	"lightwork-server/quiz"
)

const testKey = "test-signing-key-0123456789"

func testBank(t *testing.T) *quiz.Bank {
	t.Helper()
	var qs []models.QuizQuestion
	for i, c := range []int{1, 1, 2, 3, 2} {
		qs = append(qs, models.QuizQuestion{ID: i + 1, Prompt: "q", Options: []string{"a", "b", "c", "d"}, Correct: c, Explanation: "e"})
	}
	b, err := quiz.NewBank(qs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b
}

func TestCodec_RoundTrip(t *testing.T) {
	b := testBank(t)
	s, _ := b.SelectAnswer(b.NewSession(), 1)
	codec := NewCodec(testKey, "lightwork", time.Hour)

	token, err := codec.Encode("abc", s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id, got, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "abc" || !reflect.DeepEqual(got, s) {
		t.Fatalf("round trip mismatch: %s %+v", id, got)
	}
}

func TestCodec_RejectsForeignTokens(t *testing.T) {
	b := testBank(t)
	codec := NewCodec(testKey, "lightwork", time.Hour)

	otherKey, _ := NewCodec("another-signing-key-987654", "lightwork", time.Hour).Encode("abc", b.NewSession())
	if _, _, err := codec.Decode(otherKey); !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Fatalf("expected signature error, got %v", err)
	}

	otherIssuer, _ := NewCodec(testKey, "elsewhere", time.Hour).Encode("abc", b.NewSession())
	if _, _, err := codec.Decode(otherIssuer); !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Fatalf("expected issuer error, got %v", err)
	}

	if _, _, err := codec.Decode("not-a-token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestCodec_RejectsExpired(t *testing.T) {
	b := testBank(t)
	codec := NewCodec(testKey, "lightwork", time.Minute)
	codec.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, err := codec.Encode("abc", b.NewSession())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	codec.now = time.Now
	if _, _, err := codec.Decode(token); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected expiry error, got %v", err)
	}
}

func TestManager_LoadAndSave(t *testing.T) {
	gin.SetMode(gin.TestMode)
	b := testBank(t)
	codec := NewCodec(testKey, "lightwork", time.Hour)
	m := NewManager(codec, b, CookieOptions{Name: "quiz"})

	// No cookie: fresh session.
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	id, s := m.Load(c)
	if id == "" || !reflect.DeepEqual(s, b.NewSession()) {
		t.Fatalf("expected fresh session, got %q %+v", id, s)
	}

	// Save then load from the issued cookie.
	answered, _ := b.SelectAnswer(s, 1)
	w := httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	if err := m.Save(c, id, answered); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "quiz" || !cookies[0].HttpOnly {
		t.Fatalf("unexpected cookies: %+v", cookies)
	}

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(cookies[0])
	gotID, got := m.Load(c)
	if gotID != id || !reflect.DeepEqual(got, answered) {
		t.Fatalf("expected saved session, got %q %+v", gotID, got)
	}
}

func TestManager_RejectsInconsistentSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	b := testBank(t)
	codec := NewCodec(testKey, "lightwork", time.Hour)
	m := NewManager(codec, b, CookieOptions{Name: "quiz"})

	forged := b.NewSession()
	forged.Score = 5
	token, err := codec.Encode("abc", forged)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: "quiz", Value: token})
	id, s := m.Load(c)
	if id == "abc" || !reflect.DeepEqual(s, b.NewSession()) {
		t.Fatalf("expected fresh session, got %q %+v", id, s)
	}
}

func TestMiddleware_SetsContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	b := testBank(t)
	m := NewManager(NewCodec(testKey, "lightwork", time.Hour), b, CookieOptions{Name: "quiz"})

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/", func(c *gin.Context) {
		id, s, ok := FromContext(c)
		if !ok || id == "" || s.Index != 0 {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
