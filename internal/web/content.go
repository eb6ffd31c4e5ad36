package web

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/p-n-ai/bootcamp-landing/internal/catalog"
	"github.com/p-n-ai/bootcamp-landing/internal/web/view"
)

var faqs = []view.FAQ{
	{
		Question: "Apakah cocok untuk pemula?",
		Answer:   "Ya. Materi dimulai dari dasar PHP 8 dan OOP sebelum masuk ke Laravel, jadi kamu tidak perlu pengalaman sebelumnya.",
	},
	{
		Question: "Berapa lama akses materinya?",
		Answer:   "Akses materi berlaku selamanya, termasuk update materi Laravel berikutnya.",
	},
	{
		Question: "Apakah ada sertifikat?",
		Answer:   "Ada. Sertifikat diberikan setelah kamu menyelesaikan project akhir.",
	},
	{
		Question: "Bagaimana jika saya kesulitan?",
		Answer:   "Kamu bisa bertanya di grup diskusi member. Mentor dan sesama peserta siap membantu.",
	},
}

// formatPrice renders an IDR amount the Indonesian way, e.g. "Rp 499.000".
func formatPrice(idr int) string {
	if idr <= 0 {
		return "Gratis"
	}
	// Printers are not safe for concurrent use.
	return message.NewPrinter(language.Indonesian).Sprintf("Rp %d", idr)
}

func courseCard(c catalog.Course) view.Course {
	return view.Course{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Badge:       c.Badge,
		Level:       c.Level,
		Price:       formatPrice(c.Price),
		Duration:    c.TotalLabel(),
		Topics:      len(c.Topics),
		Materials:   c.MaterialCount(),
	}
}
