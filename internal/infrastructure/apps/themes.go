package apps

import "github.com/bnema/theme-control/internal/domain/theme"

// batThemes maps selections to bat syntax theme names. Delta reads the same set.
func batThemes() theme.Map {
	return theme.Map{
		Light: theme.Variants{
			Default: "base16",
			ByName:  map[theme.Name]string{theme.RosePine: "rose-pine-dawn"},
		},
		Dark: theme.Variants{
			Default: "base16",
			ByName: map[theme.Name]string{
				theme.Nord:     "Nord",
				theme.RosePine: "rose-pine",
			},
		},
	}
}

func helixThemes() theme.Map {
	return theme.Map{
		Light: theme.Variants{
			Default: "rose_pine_dawn",
			ByName:  map[theme.Name]string{theme.RosePine: "rose_pine_dawn"},
		},
		Dark: theme.Variants{
			Default: "nord",
			ByName: map[theme.Name]string{
				theme.Nord:     "nord",
				theme.RosePine: "rose_pine",
			},
		},
	}
}

func kittyThemes() theme.Map {
	return theme.Map{
		Light: theme.Variants{
			Default: "Rosé Pine Dawn",
			ByName:  map[theme.Name]string{theme.RosePine: "Rosé Pine Dawn"},
		},
		Dark: theme.Variants{
			Default: "Nord",
			ByName: map[theme.Name]string{
				theme.Nord:     "Nord",
				theme.RosePine: "Rosé Pine",
			},
		},
	}
}
