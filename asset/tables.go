package asset

// Player animations, one loop per state:
// static 1, walk 5, jump 8, hit 6.
var (
	PlayerStatic = frames(
		NewSprite(
			"  o~ ",
			" /|\\ ",
			"  |  ",
			" / \\ ",
		),
	)

	PlayerWalk = frames(
		NewSprite(
			"  o~ ",
			" /|\\ ",
			"  |  ",
			" / | ",
		),
		NewSprite(
			"  o~ ",
			" -|\\ ",
			"  |  ",
			"  |\\ ",
		),
		NewSprite(
			"  o~ ",
			" /|- ",
			"  |  ",
			"  /| ",
		),
		NewSprite(
			"  o~ ",
			" -|\\ ",
			"  |  ",
			" |\\  ",
		),
		NewSprite(
			"  o~ ",
			" /|\\ ",
			"  |  ",
			" /  \\",
		),
	)

	PlayerJump = frames(
		NewSprite(
			" \\o~ ",
			"  |\\ ",
			"  |  ",
			" / \\ ",
		),
		NewSprite(
			" \\o/~",
			"  |  ",
			"  |  ",
			" / \\ ",
		),
		NewSprite(
			" \\o/~",
			"  |  ",
			" /|  ",
			"   \\ ",
		),
		NewSprite(
			" \\o/~",
			"  |  ",
			" <\\  ",
			"     ",
		),
		NewSprite(
			"  o/~",
			" /|  ",
			" <\\  ",
			"     ",
		),
		NewSprite(
			"  o~ ",
			" /|\\ ",
			"  |> ",
			"  /  ",
		),
		NewSprite(
			"  o~ ",
			" /|\\ ",
			"  |  ",
			" / > ",
		),
		NewSprite(
			"  o~ ",
			" /|\\ ",
			"  |  ",
			" / \\ ",
		),
	)

	PlayerHit = frames(
		NewSprite(
			"  x~ ",
			" \\|/ ",
			"  |  ",
			" / \\ ",
		),
		NewSprite(
			" ~x  ",
			" \\|/ ",
			"  |  ",
			" / \\ ",
		),
		NewSprite(
			"     ",
			" \\_x~",
			"  |  ",
			" / \\ ",
		),
		NewSprite(
			" \\ / ",
			"  |  ",
			" /|\\ ",
			"  x~ ",
		),
		NewSprite(
			"     ",
			"~x_/ ",
			"  |  ",
			" / \\ ",
		),
		NewSprite(
			"  x~ ",
			" /|\\ ",
			"  |  ",
			" / \\ ",
		),
	)
)

// Enemy walk cycle.
var EnemyWalk = frames(
	NewSprite(
		"/^^\\",
		"[ºº]",
		"/  \\",
	),
	NewSprite(
		"/^^\\",
		"[ºº]",
		" )( ",
	),
)

var (
	CoinSprite = NewSprite(
		"(¢)",
	)

	FlagSprite = NewSprite(
		"|>>>",
		"|>> ",
		"|   ",
		"|   ",
	)
)
