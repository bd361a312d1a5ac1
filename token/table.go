package token

// Escape prefixes every token. JSON text never contains it raw: control
// characters inside strings are always escaped.
const Escape = 0x01

// firstCode is the second byte of the first token.
const firstCode = 0x21

// patterns lists the schema fragments replaced by tokens. A pattern's index
// determines its token, so entries may only be appended.
//
// Overlapping patterns are fine: the scanner always takes the longest match.
var patterns = []string{
	`{"level":`,
	`"level":`,
	`"stats":{`,
	`"hp":`,
	`"maxHp":`,
	`"coins":`,
	`"damage":`,
	`"speed":`,
	`"visionRadius":`,
	`"inventory":[`,
	`"loadout":{`,
	`"weapon":`,
	`"armor":`,
	`"utility":`,
	`"activeMods":[`,
	`"bossDrops":[`,
	`"settings":{`,
	`"musicVolume":`,
	`"sfxVolume":`,
	`"joystickPosition":"`,
	`"mobileControlType":"`,
	`{"id":"`,
	`},{"id":"`,
	`"id":"`,
	`","name":"`,
	`"name":"`,
	`","type":"weapon"`,
	`","type":"armor"`,
	`","type":"utility"`,
	`","type":"consumable"`,
	`"type":"`,
	`,"rarity":"common"`,
	`,"rarity":"rare"`,
	`,"rarity":"epic"`,
	`,"rarity":"legendary"`,
	`"rarity":"`,
	`,"stats":{`,
	`"defense":`,
	`"vision":`,
	`"heal":`,
	`"joystickPosition":"left"`,
	`"joystickPosition":"right"`,
}
