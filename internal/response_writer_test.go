package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	rw.WriteHeader(http.StatusNotFound)

	if rw.Status() != http.StatusNotFound {
		t.Errorf("Status() = %d, want %d", rw.Status(), http.StatusNotFound)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if !rw.Written() {
		t.Error("Written() = false, want true")
	}
}

func TestResponseWriter_WriteHeader_OnlyOnce(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	rw.WriteHeader(http.StatusSeeOther)
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.Status() != http.StatusSeeOther {
		t.Errorf("Status() = %d, want %d", rw.Status(), http.StatusSeeOther)
	}
	if w.Code != http.StatusSeeOther {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusSeeOther)
	}
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	if rw.Written() {
		t.Fatal("Written() = true before any write")
	}

	n, err := rw.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 5 || rw.Size() != 5 {
		t.Errorf("wrote %d bytes, Size() = %d, want 5", n, rw.Size())
	}
	if w.Code != http.StatusOK {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "hello" {
		t.Errorf("body = %q, want %q", w.Body.String(), "hello")
	}
}

func TestResponseWriter_NoDoubleWrap(t *testing.T) {
	rw := NewResponseWriter(httptest.NewRecorder())

	if NewResponseWriter(rw) != rw {
		t.Error("NewResponseWriter wrapped an existing *ResponseWriter")
	}
	if rw.Unwrap() == nil {
		t.Error("Unwrap() = nil")
	}
}
