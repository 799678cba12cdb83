package ai

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	maxPromptContentRunes = 6000
	genZContentRunes      = 200
	commentContentRunes   = 500
)

const descriptionStructure = `Gunakan struktur narasi yang informatif dan ringkas seperti gaya Narasi Daily. Sertakan kutipan langsung dari %s jika tersedia.

Struktur deskripsi yang harus diikuti:

1. Lead / Pembuka Berita:
   Ringkasan peristiwa utama berdasarkan judul. Jawab unsur 5W1H sebisa mungkin.

2. Tindakan atau Rencana yang Diambil:
   Jelaskan langkah konkret yang disampaikan atau dilakukan oleh narasumber.

3. Tujuan atau Dampak:
   Uraikan alasan atau dampak dari langkah tersebut bagi publik atau stakeholder tertentu.

4. Kutipan Langsung (Opsional):
   Tambahkan kutipan dari narasumber untuk menguatkan narasi.

5. Rincian Strategi atau Isi Keputusan:
   Jelaskan solusi, kebijakan, atau rencana lanjutan yang disebutkan.

6. Penutup / Strategi Jangka Panjang:
   Akhiri dengan strategi tambahan, kesimpulan, atau harapan dari narasumber.

Sampaikan dalam minimal 4 paragraf. Gaya bahasa harus formal, padat, dan mudah dicerna pembaca awam. Cantumkan sumber berita di akhir artikel.

PENTING:
- Struktur paragraf harus rapi dan mudah dibaca
- Pastikan deskripsi kompatibel untuk dibagikan di website berita teknologi
- Hindari pengulangan informasi yang sama
- Jangan menyebutkan bahwa kamu AI atau menulis kata "ringkasan"`

func descriptionPrompt(req DescriptionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Buatkan deskripsi berita berdasarkan informasi berikut:\nJudul: %s\nPenulis / Narasumber: %s\nSumber Berita: %s\n\n",
		req.Title, req.Author, req.Source)

	if req.Content == "" {
		fmt.Fprintf(&b, descriptionStructure, "narasumber")
		return b.String()
	}

	fmt.Fprintf(&b, "KONTEN ARTIKEL: \n%s\n\n", clipContent(req.Content, maxPromptContentRunes))
	fmt.Fprintf(&b, descriptionStructure, req.Author)
	b.WriteString("\n- Jangan menambahkan konten yang tidak ada di artikel asli")
	return b.String()
}

// fillCustomPrompt substitutes {title}, {author}, {source} and, when there
// is content, {content}.
func fillCustomPrompt(req DescriptionRequest) string {
	r := strings.NewReplacer("{title}", req.Title, "{author}", req.Author, "{source}", req.Source)
	prompt := r.Replace(req.CustomPrompt)
	if req.Content != "" {
		prompt = strings.ReplaceAll(prompt, "{content}", clipContent(req.Content, maxPromptContentRunes))
	}
	return prompt
}

func genZPrompt(req DescriptionRequest) string {
	extra := ""
	if req.Content != "" {
		extra = fmt.Sprintf("\nInformasi tambahan dari artikel:\n%s...\n", headRunes(req.Content, genZContentRunes))
	}

	return fmt.Sprintf(`Ubah judul artikel ini: "%s" menjadi caption Instagram dengan gaya bahasa Gen-Z kekinian yang bikin penasaran dan WAJIB membuat orang membaca lebih lanjut.

Aturan pembuatan caption:
1. Gunakan bahasa Gen-Z Indonesia yang kekinian, gaul, tapi masih bisa dipahami (mix bahasa Indo-Inggris)
2. Tambahkan emoji yang cocok (maksimal 3-4 emoji)
3. Buat hook di awal yang bikin penasaran dan "clickbait" tapi tetap faktual
4. Sertakan frasa seperti "auto penasaran", "must-read", "gokil parah", "auto kepo"
5. Akhiri dengan 3-5 hashtag yang kekinian dan relevan dengan konten
6. Panjang caption harus 2-3 paragraf pendek saja
7. Jangan menyebutkan sumber berita, cukup katakan "cek link di bio"
8. Hindari formal, buat seperti teman sebaya bercerita

Yang WAJIB dihindari:
- Jangan terlalu formal atau seperti berita resmi
- Jangan berlebihan dalam penggunaan emoji
- Jangan mengubah fakta utama dari judul asli
- Jangan gunakan kata "artikel" atau "berita"
%s
Berikan caption akhir yang langsung bisa dipakai, tanpa menjelaskan proses pembuatannya.`, req.Title, extra)
}

func hookTitlePrompt(title string) string {
	return fmt.Sprintf(`Ubah judul berita berikut menjadi versi yang menarik perhatian Gen Z dan membuat penasaran.
Gunakan bahasa santai tapi tetap formal, untuk audiens muda Indonesia.

Judul asli:
"%s"

Judul hook versi Gen Z:`, title)
}

func commentPrompt(title, content string) string {
	return fmt.Sprintf(`Buatkan komentar kritis yang menimbulkan diskusi berdasarkan artikel berikut:
Judul: %s

Konten:
%s...

Aturan membuat komentar:
1. Komentar harus berdasarkan sudut pandang kritis namun tetap sopan
2. Fokus pada satu aspek kontroversial atau kurang dibahas dalam artikel
3. Berikan pertanyaan terbuka di akhir untuk memicu diskusi
4. Gunakan bahasa yang netral dan tidak provokatif
5. Panjang komentar antara 3-5 kalimat saja
6. Jangan menyebutkan bahwa ini adalah komentar buatan AI

Berikan komentar langsung tanpa penjelasan tambahan.`, title, headRunes(content, commentContentRunes))
}

// clipContent limits content to maxRunes, preferring to cut at a sentence end.
func clipContent(content string, maxRunes int) string {
	content = strings.TrimSpace(strings.ReplaceAll(content, "\r", ""))
	if utf8.RuneCountInString(content) <= maxRunes {
		return content
	}

	trimmed := headRunes(content, maxRunes)
	if idx := strings.LastIndex(trimmed, ". "); idx > maxRunes/5 {
		trimmed = trimmed[:idx+1]
	}
	return trimmed + "\n[TRUNCATED]"
}

func headRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
