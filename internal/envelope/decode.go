package envelope

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/jonathan/resume-builder/internal/types"
)

// Deserialize reads an envelope or storage record. It never fails: input
// that is not JSON gives an empty document with the default template and
// theme, and every field is read on its own so one bad value only loses
// itself. Entries that are not objects are dropped. The result is
// normalized.
func Deserialize(data []byte) (*types.Document, types.Template, types.Theme) {
	if !gjson.ValidBytes(data) {
		return types.NewDocument(), types.DefaultTemplate, types.DefaultTheme
	}
	root := gjson.ParseBytes(data)

	template := firstString(root, "template", "currentTemplate")
	theme := firstString(root, "theme", "currentTheme")
	doc := decodeDocument(root.Get("data"))

	return doc, types.ParseTemplate(template), types.ParseTheme(theme)
}

func decodeDocument(data gjson.Result) *types.Document {
	doc := types.NewDocument()
	if !data.IsObject() {
		return doc
	}

	personal := data.Get("personal")
	for _, f := range types.PersonalFields {
		f.Set(&doc.Personal, scalar(personal.Get(f.String())))
	}

	doc.Experience = decodeEntries(data.Get("experience"), func(r gjson.Result) types.Experience {
		e := types.Experience{ID: id(r), Current: r.Get("current").Bool()}
		for _, f := range types.ExperienceFields {
			f.Set(&e, scalar(r.Get(f.String())))
		}
		return e
	})
	doc.Education = decodeEntries(data.Get("education"), func(r gjson.Result) types.Education {
		e := types.Education{ID: id(r)}
		for _, f := range types.EducationFields {
			f.Set(&e, scalar(r.Get(f.String())))
		}
		return e
	})
	doc.Projects = decodeEntries(data.Get("projects"), func(r gjson.Result) types.Project {
		p := types.Project{ID: id(r)}
		for _, f := range types.ProjectFields {
			f.Set(&p, scalar(r.Get(f.String())))
		}
		return p
	})
	doc.Certifications = decodeEntries(data.Get("certifications"), func(r gjson.Result) types.Certification {
		c := types.Certification{ID: id(r)}
		for _, f := range types.CertificationFields {
			f.Set(&c, scalar(r.Get(f.String())))
		}
		return c
	})
	doc.Languages = decodeEntries(data.Get("languages"), func(r gjson.Result) types.Language {
		l := types.Language{ID: id(r), Proficiency: types.Beginner}
		for _, f := range types.LanguageFields {
			// unknown proficiencies keep the default
			f.Set(&l, scalar(r.Get(f.String())))
		}
		return l
	})
	doc.Awards = decodeEntries(data.Get("awards"), func(r gjson.Result) types.Award {
		a := types.Award{ID: id(r)}
		for _, f := range types.AwardFields {
			f.Set(&a, scalar(r.Get(f.String())))
		}
		return a
	})
	doc.References = decodeEntries(data.Get("references"), func(r gjson.Result) types.Reference {
		ref := types.Reference{ID: id(r)}
		for _, f := range types.ReferenceFields {
			f.Set(&ref, scalar(r.Get(f.String())))
		}
		return ref
	})

	data.Get("skills").ForEach(func(_, v gjson.Result) bool {
		if v.Type == gjson.String {
			doc.Skills = append(doc.Skills, text(v))
		}
		return true
	})

	custom := data.Get("customSection")
	doc.CustomSection.Title = scalar(custom.Get("title"))
	doc.CustomSection.Items = decodeEntries(custom.Get("items"), func(r gjson.Result) types.CustomEntry {
		c := types.CustomEntry{ID: id(r)}
		for _, f := range types.CustomFields {
			f.Set(&c, scalar(r.Get(f.String())))
		}
		return c
	})

	doc.Normalize()
	return doc
}

// decodeEntries decodes every object element of an array; anything else
// decodes to an empty list.
func decodeEntries[T any](list gjson.Result, decode func(gjson.Result) T) []T {
	out := []T{}
	if !list.IsArray() {
		return out
	}
	for _, r := range list.Array() {
		if r.IsObject() {
			out = append(out, decode(r))
		}
	}
	return out
}

// scalar reads strings and numbers as text; other JSON types read as "".
func scalar(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return text(r)
	case gjson.Number:
		return r.Raw
	}
	return ""
}

// text returns a string value with invalid UTF-8 sequences replaced.
func text(r gjson.Result) string {
	return strings.ToValidUTF8(r.String(), "\uFFFD")
}

// id reads an entry identifier. Numeric identifiers from older exports are
// kept as their decimal text; missing ones are replaced on normalization.
func id(r gjson.Result) types.ID {
	return types.ID(scalar(r.Get("id")))
}

func firstString(root gjson.Result, keys ...string) string {
	for _, k := range keys {
		if v := root.Get(k); v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return ""
}
