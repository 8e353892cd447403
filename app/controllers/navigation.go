package controllers

import "net/http"

// Bagian sidebar. Pilihan terakhir disimpan di session sendiri supaya
// kunjungan berikutnya langsung dibuka di bagian yang sama.
const defaultSection = "home"

var sectionPaths = map[string]string{
	"home":        "/home",
	"performance": "/performance",
	"menu":        "/menu",
	"orders":      "/orders",
	"settings":    "/settings",
}

// SaveSelectedSection: dipanggil oleh setiap page handler saat halamannya
// dibuka, jadi state navigasi selalu ikut halaman yang terakhir dilihat.
func SaveSelectedSection(w http.ResponseWriter, r *http.Request, section string) {
	if _, ok := sectionPaths[section]; !ok {
		return
	}

	session, _ := store.Get(r, sessionNav)
	session.Values["section"] = section
	session.Save(r, w)
}

func SelectedSection(r *http.Request) string {
	session, _ := store.Get(r, sessionNav)

	section, ok := session.Values["section"].(string)
	if !ok {
		return defaultSection
	}
	if _, known := sectionPaths[section]; !known {
		return defaultSection
	}
	return section
}

// Root: "/" diarahkan ke bagian yang terakhir dipilih.
func (server *Server) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, sectionPaths[SelectedSection(r)], http.StatusSeeOther)
}
