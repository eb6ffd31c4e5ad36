package web

import (
	"testing"

	"github.com/p-n-ai/bootcamp-landing/internal/syllabus"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		idr  int
		want string
	}{
		{0, "Gratis"},
		{-5, "Gratis"},
		{500, "Rp 500"},
		{149000, "Rp 149.000"},
		{499000, "Rp 499.000"},
		{1250000, "Rp 1.250.000"},
	}
	for _, tt := range tests {
		if got := formatPrice(tt.idr); got != tt.want {
			t.Errorf("formatPrice(%d) = %q, want %q", tt.idr, got, tt.want)
		}
	}
}

func TestHTMLSurface(t *testing.T) {
	s := &HTMLSurface{}
	s.SetText(syllabus.FieldTitle, "Judul")
	s.SetText(syllabus.FieldDescription, "Deskripsi")
	s.SetText(syllabus.FieldTotalDuration, "12 Menit")
	s.ShowContainer()
	s.SetOpaque(true)
	s.RenderTopicList([]syllabus.TopicSection{{Index: 0, Title: "A", Expanded: true}})

	m := s.Modal()
	if m.Title != "Judul" || m.Description != "Deskripsi" || m.Total != "12 Menit" {
		t.Errorf("texts = %q %q %q", m.Title, m.Description, m.Total)
	}
	if !m.Shown || !m.Opaque {
		t.Errorf("Shown=%v Opaque=%v, want both true", m.Shown, m.Opaque)
	}
	if len(m.Sections) != 1 {
		t.Errorf("sections = %d, want 1", len(m.Sections))
	}

	called := false
	remove := s.OnBackdropDismiss(func() { called = true })
	if s.dismiss == nil {
		t.Fatal("dismiss handler not recorded")
	}
	remove()
	if s.dismiss != nil || called {
		t.Error("remove should clear the handler without calling it")
	}

	s.SetOpaque(false)
	s.HideContainer()
	if m := s.Modal(); m.Shown || m.Opaque {
		t.Errorf("after hide Shown=%v Opaque=%v, want both false", m.Shown, m.Opaque)
	}
}

func TestWireSurface(t *testing.T) {
	s := &WireSurface{}

	s.Dismiss() // no handler yet
	if got := s.Drain(); len(got) != 0 {
		t.Fatalf("Drain() = %v, want empty", got)
	}

	dismissed := 0
	remove := s.OnBackdropDismiss(func() { dismissed++ })
	s.SetText(syllabus.FieldTitle, "Judul")
	s.ShowContainer()
	s.SetOpaque(true)
	s.Dismiss()
	remove()
	s.Dismiss()
	s.HideContainer()

	if dismissed != 1 {
		t.Errorf("dismissed = %d, want 1", dismissed)
	}

	got := s.Drain()
	wantOps := []string{OpBackdrop, OpSetText, OpShow, OpOpacity, OpBackdrop, OpHide}
	if len(got) != len(wantOps) {
		t.Fatalf("instructions = %+v, want ops %v", got, wantOps)
	}
	for i, op := range wantOps {
		if got[i].Op != op {
			t.Errorf("instruction %d op = %q, want %q", i, got[i].Op, op)
		}
	}
	if !got[0].Enabled || got[4].Enabled {
		t.Error("backdrop instructions should enable then disable")
	}
	if got[1].Field != syllabus.FieldTitle || got[1].Text != "Judul" {
		t.Errorf("set_text = %+v", got[1])
	}

	if again := s.Drain(); len(again) != 0 {
		t.Errorf("second Drain() = %v, want empty", again)
	}
}
