package entity

// SpellDamageType enumerates the damage types a spell can deal.
type SpellDamageType string

const (
	DamageAcid        SpellDamageType = "ACID"
	DamageBludgeoning SpellDamageType = "BLUDGEONING"
	DamageCold        SpellDamageType = "COLD"
	DamageFire        SpellDamageType = "FIRE"
	DamageForce       SpellDamageType = "FORCE"
	DamageLightning   SpellDamageType = "LIGHTNING"
	DamageNecrotic    SpellDamageType = "NECROTIC"
	DamagePiercing    SpellDamageType = "PIERCING"
	DamagePoison      SpellDamageType = "POISON"
	DamagePsychic     SpellDamageType = "PSYCHIC"
	DamageRadiant     SpellDamageType = "RADIANT"
	DamageSlashing    SpellDamageType = "SLASHING"
	DamageThunder     SpellDamageType = "THUNDER"
)

var validDamageTypes = map[SpellDamageType]bool{
	DamageAcid: true, DamageBludgeoning: true, DamageCold: true,
	DamageFire: true, DamageForce: true, DamageLightning: true,
	DamageNecrotic: true, DamagePiercing: true, DamagePoison: true,
	DamagePsychic: true, DamageRadiant: true, DamageSlashing: true,
	DamageThunder: true,
}

// IsValid reports whether the damage type is a known value.
// The empty value is valid and means the spell deals no damage.
func (d SpellDamageType) IsValid() bool {
	return d == "" || validDamageTypes[d]
}

// Spell is a user-owned spell. Official spells belong to the admin user
// and are always publicly visible.
type Spell struct {
	ID            uint
	UserID        string
	PublicVisible bool
	Name          string
	Level         int
	School        string
	CastTime      string
	CastRange     string
	Components    string
	Duration      string
	Description   string
	Concentration bool
	Ritual        bool
	DamageType    SpellDamageType
	DamageByLevel map[int]string // slot level -> damage dice
}
