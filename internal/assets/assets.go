// Package assets holds the fixed glyph art the scenes are drawn from.
package assets

// House is drawn above the info panel. Window panes are the [] pairs.
var House = []string{
	`         /\         `,
	`        /  \        `,
	`       / [] \       `,
	`      /|    |\      `,
	`     / |    | \     `,
	`    /__|____|__\    `,
	`    |[]| __ |[]|    `,
	`    |  ||  ||  |    `,
	`    |  ||  ||  |    `,
	`    |__|____|__|    `,
	`  __________________`,
	` /                  `,
}

// HouseWidth is the column span reserved for the house when centring it.
const HouseWidth = 22

// SunFrames are the three rotation frames of the sun.
var SunFrames = [][]string{
	{
		`     \   |   /    `,
		`      \  |  /     `,
		`  ---  (   )  --- `,
		`      /  |  \     `,
		`     /   |   \    `,
	},
	{
		`      \  |  /     `,
		`    \  \ | /  /   `,
		`  ---  (   )  --- `,
		`    /  / | \  \   `,
		`      /  |  \     `,
	},
	{
		`   \     |     /  `,
		`     \   |   /    `,
		`  ---  (   )  --- `,
		`     /   |   \    `,
		`   /     |     \  `,
	},
}

// CloudLarge and CloudSmall are the two drifting cloud shapes.
var (
	CloudLarge = []string{
		`   .--.  .--.`,
		`  (    ''    )`,
		`   '--'--'--' `,
	}
	CloudSmall = []string{
		`  .---... `,
		` (       )`,
		`  '-----' `,
	}
)

// RainBands are the two background cloud bands of the rain scene.
var RainBands = []string{
	`.-.(  ).-.  .-.(   ).  .-(    )-.  .(  ).`,
	` '---'  '--' '----'  '--'  '---'  '--'  `,
}

// StormBands are the heavy cloud rows across the top of the thunder scene.
var StormBands = []string{
	"▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓",
	"▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓",
	"▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒",
}

// LightningBolts are picked in turn, one per thunder cycle.
var LightningBolts = [][]string{
	{`   /`, `  / `, ` /  `, ` \  `, `  \ `},
	{`  \  `, `   \ `, `    \`, `   / `, `  /  `},
	{`  |  `, `  |  `, ` /   `, `/    `, `\    `},
}

// Ripples is the puddle ripple cycle of the rain scene.
var Ripples = []string{".", "o", "O", "o", "."}

// FloodWave is the flood water cycle of the thunder scene.
var FloodWave = []rune("~~≈~~≈")

// FogBand is tiled across each fog row. Density varies along the band so a
// horizontal shift is visible.
var FogBand = []rune("░░▒░░ ░░░▒▒░░ ░▒░░░ ░░")

const (
	GroundGrass = "^"
	GroundSnow  = "~*~*~*~*~"
)

// DropGlyphs and FlakeGlyphs are drawn from uniformly; repeats weight the
// choice.
var (
	DropGlyphs  = []rune{'|', '|', '╎'}
	FlakeGlyphs = []rune{'*', '*', '·', '•', '+', '·'}
)
