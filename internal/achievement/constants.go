package achievement

// Default catalog ids
const (
	IDKillingSpree    = "killing_spree"
	IDRampage         = "rampage"
	IDUnstoppable     = "unstoppable"
	IDGodlike         = "godlike"
	IDComboMaster     = "combo_master"
	IDCenturion       = "centurion"
	IDExecutioner     = "executioner"
	IDMissionRunner   = "mission_runner"
	IDWarChest        = "war_chest"
	IDVeteran         = "veteran"
	IDTenacious       = "tenacious"
	IDSharpshooter    = "sharpshooter"
	DefaultCatalogVer = "1.0"
)

// Log messages
const (
	LogMsgCatalogLoaded   = "Achievement catalog loaded"
	LogMsgCatalogFallback = "Achievement catalog not found, using defaults"
)

// Error messages
const (
	ErrMsgReadCatalog  = "failed to read achievement catalog"
	ErrMsgParseCatalog = "failed to parse achievement catalog"
)
