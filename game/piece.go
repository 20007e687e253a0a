package game

// Category enumerates the 21 piece types of one side: 14 regular ranks plus
// 7 specials. Lower rank beats higher in a plain battle; specials carry
// sentinel ranks and are governed by dedicated rules in battle.go.
type Category int8

const (
	Marshal Category = iota // rank 1, strongest regular
	General
	LieutenantGeneral
	MajorGeneral
	Brigadier
	Colonel
	LieutenantColonel
	Major
	Captain
	FirstLieutenant
	SecondLieutenant
	MasterSergeant
	Sergeant
	Corporal // rank 14, weakest regular

	BombA
	BombB
	Engineer
	RaiderA // beats ranks 1-5
	RaiderB
	MilitaryPolice
	Flag

	NumCategories // 21
)

type categoryInfo struct {
	name    string
	rank    int
	special bool
	canMove bool
}

// Ranks follow the original catalog: bombs 0, engineer 16, raiders 17,
// military police 18, flag 19. The bomb's 0 never meets a plain rank
// comparison except bomb vs bomb (mutual destruction) and battles involving
// the military police.
var catalog = [NumCategories]categoryInfo{
	Marshal:           {"marshal", 1, false, true},
	General:           {"general", 2, false, true},
	LieutenantGeneral: {"lieutenant general", 3, false, true},
	MajorGeneral:      {"major general", 4, false, true},
	Brigadier:         {"brigadier", 5, false, true},
	Colonel:           {"colonel", 6, false, true},
	LieutenantColonel: {"lieutenant colonel", 7, false, true},
	Major:             {"major", 8, false, true},
	Captain:           {"captain", 9, false, true},
	FirstLieutenant:   {"first lieutenant", 10, false, true},
	SecondLieutenant:  {"second lieutenant", 11, false, true},
	MasterSergeant:    {"master sergeant", 12, false, true},
	Sergeant:          {"sergeant", 13, false, true},
	Corporal:          {"corporal", 14, false, true},
	BombA:             {"bomb", 0, true, false},
	BombB:             {"bomb", 0, true, false},
	Engineer:          {"engineer", 16, true, true},
	RaiderA:           {"raider", 17, true, true},
	RaiderB:           {"raider", 17, true, true},
	MilitaryPolice:    {"military police", 18, true, true},
	Flag:              {"flag", 19, true, false},
}

func (c Category) Name() string    { return catalog[c].name }
func (c Category) Rank() int       { return catalog[c].rank }
func (c Category) IsSpecial() bool { return catalog[c].special }
func (c Category) CanMove() bool   { return catalog[c].canMove }

func (c Category) IsBomb() bool   { return c == BombA || c == BombB }
func (c Category) IsRaider() bool { return c == RaiderA || c == RaiderB }

// IsTopRank reports whether c is one of the five strongest regular ranks,
// the raiders' prey.
func (c Category) IsTopRank() bool {
	return !catalog[c].special && catalog[c].rank <= 5
}

// String returns the identifier used on the wire, e.g. "MAJOR_GENERAL".
func (c Category) String() string {
	return categoryIDs[c]
}

var categoryIDs = [NumCategories]string{
	Marshal:           "MARSHAL",
	General:           "GENERAL",
	LieutenantGeneral: "LIEUTENANT_GENERAL",
	MajorGeneral:      "MAJOR_GENERAL",
	Brigadier:         "BRIGADIER",
	Colonel:           "COLONEL",
	LieutenantColonel: "LIEUTENANT_COLONEL",
	Major:             "MAJOR",
	Captain:           "CAPTAIN",
	FirstLieutenant:   "FIRST_LIEUTENANT",
	SecondLieutenant:  "SECOND_LIEUTENANT",
	MasterSergeant:    "MASTER_SERGEANT",
	Sergeant:          "SERGEANT",
	Corporal:          "CORPORAL",
	BombA:             "BOMB_A",
	BombB:             "BOMB_B",
	Engineer:          "ENGINEER",
	RaiderA:           "RAIDER_A",
	RaiderB:           "RAIDER_B",
	MilitaryPolice:    "MILITARY_POLICE",
	Flag:              "FLAG",
}

// Piece is one playing piece. Pieces are never deleted: dead pieces leave
// the grid but stay in the board's arena for history and bookkeeping.
// Revealed is monotonic - once true it never resets.
type Piece struct {
	Category Category
	Owner    Side
	Alive    bool
	Revealed bool
}

// newRoster builds the full 21-piece roster for one side, one of each
// category, in catalog order.
func newRoster(owner Side) []Piece {
	roster := make([]Piece, NumCategories)
	for c := Category(0); c < NumCategories; c++ {
		roster[c] = Piece{Category: c, Owner: owner, Alive: true}
	}
	return roster
}
