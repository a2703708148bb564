package constants

import "time"

// Centralized constants for env keys, routes and gameplay tuning.
const (
	// Environment variable keys
	EnvConfigPath = "SARANDA_CONFIG"
	EnvDBPath     = "SARANDA_DB"
	EnvAddr       = "SARANDA_ADDR"
	EnvSpeciesURL = "SARANDA_SPECIES_URL"
	EnvRegionsTab = "SARANDA_REGIONS"
	EnvDebug      = "SARANDA_DEBUG"

	// Defaults
	DefaultConfigPath  = "./saranda_config.json"
	DefaultDBPath      = "./data/saranda.db"
	DefaultAddr        = ":8080"
	DefaultSpeciesURL  = "https://pokeapi.co/api/v2"
	DefaultRegionsPath = "./regions.yaml"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Routes used by the backend router
const (
	RouteAPIPrefix = "/api"

	RouteState   = "/state"
	RouteStream  = "/stream"
	RouteRegions = "/regions"
	RouteDex     = "/dex"

	RouteSearch = "/search"
	RouteGym    = "/gyms/:gymID/challenge"
	RouteLeague = "/league/challenge"

	RouteBattleAttack      = "/battle/attack"
	RouteBattleCapture     = "/battle/capture"
	RouteBattleSwitch      = "/battle/switch"
	RouteBattleFlee        = "/battle/flee"
	RouteBattleAcknowledge = "/battle/acknowledge"

	RouteParty       = "/party"
	RoutePartySwap   = "/party/swap"
	RoutePartyHeal   = "/party/heal"
	RouteBoxDeposit  = "/box/deposit"
	RouteBoxWithdraw = "/box/withdraw"
	RouteBoxRelease  = "/box/release"

	RouteStarter = "/starter"
	RouteTrade   = "/trade"
	RouteNature  = "/nature"

	RouteItemUse   = "/items/use"
	RouteItemEquip = "/items/equip"
	RouteItemStrip = "/items/unequip"
	RouteShopBuy   = "/shop/buy"
	RouteShopSell  = "/shop/sell"

	RouteEvolutionPending = "/evolution"
	RouteEvolutionConfirm = "/evolution/confirm"
	RouteEvolutionDecline = "/evolution/decline"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest     = "Invalid request"
	ErrNoActiveBattle     = "No active battle"
	ErrBattleInProgress   = "A battle is already in progress"
	ErrPartyEmpty         = "No able creature in the party"
	ErrCreatureNotFound   = "Creature not found"
	ErrGymNotFound        = "Gym not found"
	ErrNoPendingEvolution = "No pending evolution"
	ErrFailedFetchState   = "Failed to fetch state"
	ErrFailedSaveProfile  = "Failed to save profile"
	ErrStarterOwned       = "A starter was already chosen"
)

// Gameplay tuning
const (
	// Encounter generation
	NothingFoundChance = 0.20
	SearchDelay        = 1500 * time.Millisecond
	WildLevelCap       = 95
	GymLevelBonus      = 2
	GymHPScale         = 1.5
	LeagueBossLevel    = 75
	LeagueHPScale      = 2.0

	// Rewards
	ExpPerOpponentLevel = 20
	ExpBonusWild        = 100
	ExpBonusGym         = 500
	ExpBonusLeague      = 1000
	MoneyPerLevelWild   = 10
	MoneyPerLevelBoss   = 30
	MoneyBonusLeague    = 2000
	ItemDropChance      = 0.50
	DefeatMoneyPenalty  = 100

	// Roster
	StarterLevel       = 5
	StarterSpeciesPool = 9

	// Idle recovery
	RegenInterval = 10 * time.Second

	// Training caps
	EVPerVitamin = 10
	EVStatCap    = 252
	EVTotalCap   = 510
)
