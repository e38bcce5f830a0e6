package views

import "html/template"

// Parse loads every embedded template under a shared func map.
func Parse() (*template.Template, error) {
	return template.New("views").Funcs(template.FuncMap{
		"iterate": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i
			}
			return out
		},
	}).ParseFS(FS, "*.html")
}
