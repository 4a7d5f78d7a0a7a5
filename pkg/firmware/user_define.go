package firmware

// UserDefineKey is a build-time configuration flag supported by a device's firmware.
type UserDefineKey uint8

const (
	UserDefineRegulatoryDomainAU915 UserDefineKey = iota
	UserDefineRegulatoryDomainEU868
	UserDefineRegulatoryDomainIN866
	UserDefineRegulatoryDomainAU433
	UserDefineRegulatoryDomainEU433
	UserDefineRegulatoryDomainFCC915
	UserDefineRegulatoryDomainISM2400
	UserDefineRegulatoryDomainEUCE2400
	UserDefineBindingPhrase
	UserDefineHybridSwitches8
	UserDefineEnableTelemetry
	UserDefineTLMReportIntervalMS
	UserDefineFastSync
	UserDefineR9MUnlockHigherPower
	UserDefineUnlockHigherPower
	UserDefineUseUART2
	UserDefineUARTInverted
	UserDefineUseR9MMR9MiniSBUS
	UserDefineAutoWifiOnInterval
	UserDefineHomeWifiSSID
	UserDefineHomeWifiPassword
	UserDefineJustBeepOnce
	UserDefineDisableAllBeeps
	UserDefineDisableStartupBeep
	UserDefineMyStartupMelody
	UserDefineFeatureOpenTXSync
	UserDefineFeatureOpenTXSyncAutotune
	UserDefineLockOnFirstConnection
	UserDefineLockOn50Hz
	UserDefineUse500Hz
	UserDefineUseDiversity
	UserDefineNoSyncOnArm
	UserDefineArmChannel
	UserDefineUseESP8266Backpack
	UserDefineUseTXBackpack
	UserDefineRcvrUARTBaud
	UserDefineRcvrInvertTX
	UserDefineDeviceName

	userDefineCount
)

// userDefineNames holds the canonical member names, indexed by value.
var userDefineNames = [userDefineCount]string{
	UserDefineRegulatoryDomainAU915:     "REGULATORY_DOMAIN_AU_915",
	UserDefineRegulatoryDomainEU868:     "REGULATORY_DOMAIN_EU_868",
	UserDefineRegulatoryDomainIN866:     "REGULATORY_DOMAIN_IN_866",
	UserDefineRegulatoryDomainAU433:     "REGULATORY_DOMAIN_AU_433",
	UserDefineRegulatoryDomainEU433:     "REGULATORY_DOMAIN_EU_433",
	UserDefineRegulatoryDomainFCC915:    "REGULATORY_DOMAIN_FCC_915",
	UserDefineRegulatoryDomainISM2400:   "REGULATORY_DOMAIN_ISM_2400",
	UserDefineRegulatoryDomainEUCE2400:  "REGULATORY_DOMAIN_EU_CE_2400",
	UserDefineBindingPhrase:             "BINDING_PHRASE",
	UserDefineHybridSwitches8:           "HYBRID_SWITCHES_8",
	UserDefineEnableTelemetry:           "ENABLE_TELEMETRY",
	UserDefineTLMReportIntervalMS:       "TLM_REPORT_INTERVAL_MS",
	UserDefineFastSync:                  "FAST_SYNC",
	UserDefineR9MUnlockHigherPower:      "R9M_UNLOCK_HIGHER_POWER",
	UserDefineUnlockHigherPower:         "UNLOCK_HIGHER_POWER",
	UserDefineUseUART2:                  "USE_UART2",
	UserDefineUARTInverted:              "UART_INVERTED",
	UserDefineUseR9MMR9MiniSBUS:         "USE_R9MM_R9MINI_SBUS",
	UserDefineAutoWifiOnInterval:        "AUTO_WIFI_ON_INTERVAL",
	UserDefineHomeWifiSSID:              "HOME_WIFI_SSID",
	UserDefineHomeWifiPassword:          "HOME_WIFI_PASSWORD",
	UserDefineJustBeepOnce:              "JUST_BEEP_ONCE",
	UserDefineDisableAllBeeps:           "DISABLE_ALL_BEEPS",
	UserDefineDisableStartupBeep:        "DISABLE_STARTUP_BEEP",
	UserDefineMyStartupMelody:           "MY_STARTUP_MELODY",
	UserDefineFeatureOpenTXSync:         "FEATURE_OPENTX_SYNC",
	UserDefineFeatureOpenTXSyncAutotune: "FEATURE_OPENTX_SYNC_AUTOTUNE",
	UserDefineLockOnFirstConnection:     "LOCK_ON_FIRST_CONNECTION",
	UserDefineLockOn50Hz:                "LOCK_ON_50HZ",
	UserDefineUse500Hz:                  "USE_500HZ",
	UserDefineUseDiversity:              "USE_DIVERSITY",
	UserDefineNoSyncOnArm:               "NO_SYNC_ON_ARM",
	UserDefineArmChannel:                "ARM_CHANNEL",
	UserDefineUseESP8266Backpack:        "USE_ESP8266_BACKPACK",
	UserDefineUseTXBackpack:             "USE_TX_BACKPACK",
	UserDefineRcvrUARTBaud:              "RCVR_UART_BAUD",
	UserDefineRcvrInvertTX:              "RCVR_INVERT_TX",
	UserDefineDeviceName:                "DEVICE_NAME",
}

// String returns the canonical member name.
func (k UserDefineKey) String() string {
	if k >= userDefineCount {
		return "UNKNOWN"
	}
	return userDefineNames[k]
}

// UserDefineKeyMembers returns the canonical name → value table.
// Each call returns a new map.
func UserDefineKeyMembers() map[string]UserDefineKey {
	members := make(map[string]UserDefineKey, userDefineCount)
	for k := UserDefineKey(0); k < userDefineCount; k++ {
		members[userDefineNames[k]] = k
	}
	return members
}
