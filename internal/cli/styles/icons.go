package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "\uf0ac" // browser/web
	IconSearch    = "\uf002" // magnifier
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right
	IconBolt      = "\uf0e7" // shortcut
	IconHome      = "\uf015" // home
	IconReload    = "\uf021" // refresh
	IconCheck     = "\uf00c" // check
	IconX         = "\uf00d" // x
	IconWarning   = "\uf071" // warning
	IconConfig    = "\ue615" // config
	IconCursor    = "\uf054" // chevron right
)
