package location

// DefaultTable is the built-in location vocabulary. Order matters: when two
// entries match at the same position the earlier one wins.
var DefaultTable = Table{
	Version: 1,
	Entries: []Entry{
		{Name: "prifddinas", Pattern: `p(?:rif+)?\s*(?:teak|mahog(?:any)?|mag(?:e|ic))`},
		{Name: "seers", Pattern: `(?:n(?:orth)?|s(?:outh)?)?\s*seer`},
		{Name: "mage-bank", Pattern: `(?:n(?:orth)?|s(?:outh)?)\s*mag(?:e|ic)`},
		{Name: "legends", Pattern: `(?:w(?:est)?|s(?:outh)?)\s*legend`},
		{Name: "xeric", Pattern: `(?:xerics?\b)?(?:glade|heart|lookout)`},
		{Name: "draynor", Pattern: `dray(?:nor)?`},
		{Name: "rada", Pattern: `rada(?:\b(?:e(?:ast)?|w(?:est)?))?`},
		{Name: "zalcano", Pattern: `zalc(?:ano)?`},
		{Name: "edgeville", Pattern: `edge`},
		{Name: "rimmington", Pattern: `rim(?:mington)?`},
		{Name: "ape-atoll", Pattern: `ape(?:\batoll)?`},
		{Name: "graveyard", Pattern: `l*grave`},
		{Name: "lumbridge", Pattern: `lumb(?:y|ridge)?`},
		{Name: "grand-exchange", Pattern: `ge`},
		{Name: "castle", Pattern: `v*castle`},
		{Name: "church", Pattern: `church`},
		{Name: "myth", Pattern: `myth`},
		{Name: "soul", Pattern: `soul`},
		{Name: "woodcutting-guild", Pattern: `wcg`},
		{Name: "battlefront", Pattern: `battlefront`},
		{Name: "botd3", Pattern: `botd3`},
		{Name: "shayzien", Pattern: `shayzien`},
		{Name: "bjp", Pattern: `bjp`},
		{Name: "bkp", Pattern: `bkp`},
		{Name: "arceuus", Pattern: `arc`},
		{Name: "circus", Pattern: `cir`},
		{Name: "corsair", Pattern: `corsair`},
		{Name: "barbarian", Pattern: `barb`},
		{Name: "castle-wars", Pattern: `cw`},
		{Name: "hosidius-spirit", Pattern: `hspirit`},
		{Name: "nieve", Pattern: `nieve`},
		{Name: "shay", Pattern: `shay`},
		{Name: "falador", Pattern: `fally`},
		{Name: "grotto", Pattern: `grotto`},
		{Name: "gwenith", Pattern: `Gwennith`},
		{Name: "north-cabbage", Pattern: `ncabbage`},
		{Name: "south-cabbage", Pattern: `scabbage`},
		{Name: "gnome", Pattern: `gnome`},
		{Name: "lumber", Pattern: `lumber`},
		{Name: "northwest-seers", Pattern: `nwseer`},
		{Name: "farm", Pattern: `farm`},
		{Name: "hosidius", Pattern: `hos`},
		{Name: "port-phasmatys", Pattern: `phas`},
		{Name: "piscatoris", Pattern: `pisc`},
		{Name: "port-sarim", Pattern: `sarim`},
		{Name: "lumber-tree", Pattern: `ltree`},
		{Name: "camelot", Pattern: `cam`},
		{Name: "legends-guild", Pattern: `legend`},
		{Name: "oasis", Pattern: `Oasis`},
		{Name: "fortis", Pattern: `Fortis`},
		{Name: "zanaris", Pattern: `zanaris`},
		{Name: "yak", Pattern: `n*yak`},
		{Name: "flax", Pattern: `flax`},
		{Name: "mage-training-arena", Pattern: `MTA`},
	},
}
