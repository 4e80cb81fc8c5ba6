// Package templates renders email bodies from Liquid templates.
//
// Templates resolve by name against an fs.FS using the fixed path contract
// "emails/<name>.html". Compiled templates are cached, so repeated sends of
// the same template parse it once.
//
//	engine := templates.New(os.DirFS("assets"))
//	html, err := engine.Render("welcome_email", map[string]any{
//	    "username": "alice",
//	})
//
// Templates can also be registered directly from source, which is how tests
// and callers that embed their templates avoid a filesystem:
//
//	err := engine.RegisterString("welcome_email", "<p>Hello {{ username }}</p>")
//
// StripTags derives a plain-text alternative from rendered HTML.
package templates
