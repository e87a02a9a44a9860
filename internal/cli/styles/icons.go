package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "\uf0ac" // browser/web
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info

	IconConfig  = "\ue615" // config
	IconFolder  = "\uf07b" // folder
	IconDesktop = "\uf108" // desktop
	IconCursor  = "\uf054" // chevron
	IconClock   = "\uf017" // clock
	IconPalette = "\uf1fc" // paint brush
	IconMoon    = "\uf186" // moon
	IconSun     = "\uf185" // sun
	IconPlug    = "\uf1e6" // plug
)

// AppearanceIcon returns the moon or sun icon for an appearance.
func AppearanceIcon(dark bool) string {
	if dark {
		return IconMoon
	}
	return IconSun
}
