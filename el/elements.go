package el

import "github.com/crel-dev/crel/pkg/node"

// Element descriptors, one per HTML element name.
var (
	A          = node.NewTag("a", false)
	Abbr       = node.NewTag("abbr", false)
	Address    = node.NewTag("address", false)
	Area       = node.NewTag("area", true)
	Article    = node.NewTag("article", false)
	Aside      = node.NewTag("aside", false)
	Audio      = node.NewTag("audio", false)
	B          = node.NewTag("b", false)
	Base       = node.NewTag("base", true)
	Bdi        = node.NewTag("bdi", false)
	Bdo        = node.NewTag("bdo", false)
	Blockquote = node.NewTag("blockquote", false)
	Body       = node.NewTag("body", false)
	Br         = node.NewTag("br", true)
	Button     = node.NewTag("button", false)
	Canvas     = node.NewTag("canvas", false)
	Center     = node.NewTag("center", false)
	Caption    = node.NewTag("caption", false)
	Cite       = node.NewTag("cite", false)
	Code       = node.NewTag("code", false)
	Col        = node.NewTag("col", true)
	Colgroup   = node.NewTag("colgroup", false)
	Datalist   = node.NewTag("datalist", false)
	Dd         = node.NewTag("dd", false)
	Details    = node.NewTag("details", false)
	Del        = node.NewTag("del", false)
	Dfn        = node.NewTag("dfn", false)
	Div        = node.NewTag("div", false)
	Dl         = node.NewTag("dl", false)
	Dt         = node.NewTag("dt", false)
	Em         = node.NewTag("em", false)
	Embed      = node.NewTag("embed", true)
	Fieldset   = node.NewTag("fieldset", false)
	Figure     = node.NewTag("figure", false)
	Figcaption = node.NewTag("figcaption", false)
	Footer     = node.NewTag("footer", false)
	Font       = node.NewTag("font", false)
	Form       = node.NewTag("form", false)
	Head       = node.NewTag("head", false)
	Header     = node.NewTag("header", false)
	H1         = node.NewTag("h1", false)
	H2         = node.NewTag("h2", false)
	H3         = node.NewTag("h3", false)
	H4         = node.NewTag("h4", false)
	H5         = node.NewTag("h5", false)
	H6         = node.NewTag("h6", false)
	Hr         = node.NewTag("hr", true)
	Html       = node.NewTag("html", false)
	I          = node.NewTag("i", false)
	Iframe     = node.NewTag("iframe", false)
	Img        = node.NewTag("img", true)
	Input      = node.NewTag("input", true)
	Ins        = node.NewTag("ins", false)
	Kbd        = node.NewTag("kbd", false)
	Label      = node.NewTag("label", false)
	Legend     = node.NewTag("legend", false)
	Li         = node.NewTag("li", false)
	Link       = node.NewTag("link", true)
	Main       = node.NewTag("main", false)
	Mark       = node.NewTag("mark", false)
	Marquee    = node.NewTag("marquee", false)
	Math       = node.NewTag("math", false)
	Menu       = node.NewTag("menu", false)
	Menuitem   = node.NewTag("menuitem", false)
	Meta       = node.NewTag("meta", true)
	Meter      = node.NewTag("meter", false)
	Nav        = node.NewTag("nav", false)
	Object     = node.NewTag("object", false)
	Noscript   = node.NewTag("noscript", false)
	Ol         = node.NewTag("ol", false)
	Optgroup   = node.NewTag("optgroup", false)
	Option     = node.NewTag("option", false)
	P          = node.NewTag("p", false)
	Path       = node.NewTag("path", false)
	Param      = node.NewTag("param", true)
	Picture    = node.NewTag("picture", false)
	Pre        = node.NewTag("pre", false)
	Progress   = node.NewTag("progress", false)
	Q          = node.NewTag("q", false)
	Rp         = node.NewTag("rp", false)
	Rt         = node.NewTag("rt", false)
	Ruby       = node.NewTag("ruby", false)
	S          = node.NewTag("s", false)
	Samp       = node.NewTag("samp", false)
	Script     = node.NewTag("script", false)
	Section    = node.NewTag("section", false)
	Select     = node.NewTag("select", false)
	Small      = node.NewTag("small", false)
	Source     = node.NewTag("source", true)
	Span       = node.NewTag("span", false)
	Strike     = node.NewTag("strike", false)
	Strong     = node.NewTag("strong", false)
	Style      = node.NewTag("style", false)
	Sub        = node.NewTag("sub", false)
	Summary    = node.NewTag("summary", false)
	Sup        = node.NewTag("sup", false)
	Svg        = node.NewTag("svg", false)
	Table      = node.NewTag("table", false)
	Tbody      = node.NewTag("tbody", false)
	Template   = node.NewTag("template", false)
	Textarea   = node.NewTag("textarea", false)
	Td         = node.NewTag("td", false)
	Th         = node.NewTag("th", false)
	Thead      = node.NewTag("thead", false)
	Time       = node.NewTag("time", false)
	Title      = node.NewTag("title", false)
	Tr         = node.NewTag("tr", false)
	Track      = node.NewTag("track", true)
	U          = node.NewTag("u", false)
	Ul         = node.NewTag("ul", false)
	Var        = node.NewTag("var", false)
	Video      = node.NewTag("video", false)
	Wbr        = node.NewTag("wbr", true)
)

// all lists every descriptor above; the registry is built from it.
var all = []*node.Tag{
	A, Abbr, Address, Area, Article, Aside, Audio, B, Base, Bdi,
	Bdo, Blockquote, Body, Br, Button, Canvas, Center, Caption, Cite, Code,
	Col, Colgroup, Datalist, Dd, Details, Del, Dfn, Div, Dl, Dt,
	Em, Embed, Fieldset, Figure, Figcaption, Footer, Font, Form, Head, Header,
	H1, H2, H3, H4, H5, H6, Hr, Html, I, Iframe,
	Img, Input, Ins, Kbd, Label, Legend, Li, Link, Main, Mark,
	Marquee, Math, Menu, Menuitem, Meta, Meter, Nav, Object, Noscript, Ol,
	Optgroup, Option, P, Path, Param, Picture, Pre, Progress, Q, Rp,
	Rt, Ruby, S, Samp, Script, Section, Select, Small, Source, Span,
	Strike, Strong, Style, Sub, Summary, Sup, Svg, Table, Tbody, Template,
	Textarea, Td, Th, Thead, Time, Title, Tr, Track, U, Ul,
	Var, Video, Wbr,
}
