package a

func Get(tpl string) string { return tpl }

const card = `<div class="card">`

var _ = Get(`<div><p></p>`)             // want `unclosed tags: \[\('div', 0\)\]`
var _ = Get(`<div><p></div>`)           // want `expected closing tag </p> \(opened at 5\) but found </div> at index 8`
var _ = Get(`<div></div></div>`)        // want `unexpected closing tag </div> at index 11`
var _ = Get(`<div><span>Content</div>`) // want `expected closing tag </span> \(opened at 5\) but found </div> at index 18`

var _ = Get(`<button>`)
var _ = Get(`<ul><li>one<br></li></ul>`)
var _ = Get(card + `<p>Hello</p></div>`)
var _ = Get(card + `<p>Hello</div>`) // want `expected closing tag </p>`

func dynamic(tpl string) string {
	return Get(tpl)
}
