package service

import (
	"strconv"
	"strings"

	"quote-hunt/database"
	"quote-hunt/database/model"
	"quote-hunt/util/common"
	"quote-hunt/util/crypto"
	"quote-hunt/util/random"
)

var defaultValueMap = map[string]string{
	"webListen":     "",
	"webPort":       "8080",
	"webBasePath":   "/",
	"sessionMaxAge": "60",
	"publicURL":     "http://localhost:8080",
	"introLocation": "",
	"adminPassword": "",
}

// SettingService reads and writes runtime settings stored in the database,
// falling back to defaultValueMap for unset keys.
type SettingService struct{}

func (s *SettingService) getSetting(key string) (*model.Setting, error) {
	db := database.GetDB()
	setting := &model.Setting{}
	err := db.Model(model.Setting{}).Where("key = ?", key).First(setting).Error
	if err != nil {
		return nil, err
	}
	return setting, nil
}

func (s *SettingService) saveSetting(key string, value string) error {
	setting, err := s.getSetting(key)
	db := database.GetDB()
	if database.IsNotFound(err) {
		return db.Create(&model.Setting{
			Key:   key,
			Value: value,
		}).Error
	} else if err != nil {
		return err
	}
	setting.Key = key
	setting.Value = value
	return db.Save(setting).Error
}

func (s *SettingService) getString(key string) (string, error) {
	setting, err := s.getSetting(key)
	if database.IsNotFound(err) {
		value, ok := defaultValueMap[key]
		if !ok {
			return "", common.NewErrorf("key <%v> not in defaultValueMap", key)
		}
		return value, nil
	} else if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (s *SettingService) setString(key string, value string) error {
	return s.saveSetting(key, value)
}

func (s *SettingService) getInt(key string) (int, error) {
	str, err := s.getString(key)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(str)
}

func (s *SettingService) setInt(key string, value int) error {
	return s.setString(key, strconv.Itoa(value))
}

func (s *SettingService) GetListen() (string, error) {
	return s.getString("webListen")
}

func (s *SettingService) SetListen(ip string) error {
	return s.setString("webListen", ip)
}

func (s *SettingService) GetPort() (int, error) {
	return s.getInt("webPort")
}

func (s *SettingService) SetPort(port int) error {
	return s.setInt("webPort", port)
}

// GetBasePath returns the base path with enforced leading and trailing slash.
func (s *SettingService) GetBasePath() (string, error) {
	basePath, err := s.getString("webBasePath")
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath, nil
}

// GetSecret returns the token signing secret, generating and persisting one
// on first use so minted tokens survive restarts.
func (s *SettingService) GetSecret() (string, error) {
	setting, err := s.getSetting("secret")
	if database.IsNotFound(err) {
		secret := random.Seq(32)
		if err := s.saveSetting("secret", secret); err != nil {
			return "", err
		}
		return secret, nil
	} else if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (s *SettingService) GetSessionMaxAge() (int, error) {
	return s.getInt("sessionMaxAge")
}

func (s *SettingService) GetPublicURL() (string, error) {
	return s.getString("publicURL")
}

func (s *SettingService) SetPublicURL(url string) error {
	return s.setString("publicURL", strings.TrimSuffix(url, "/"))
}

// GetIntroLocation returns the location id excluded from collection counts.
// Empty means no location is excluded.
func (s *SettingService) GetIntroLocation() (string, error) {
	return s.getString("introLocation")
}

func (s *SettingService) SetIntroLocation(id string) error {
	return s.setString("introLocation", id)
}

func (s *SettingService) GetAdminPasswordHash() (string, error) {
	return s.getString("adminPassword")
}

// SetAdminPassword stores the admin password bcrypt-hashed.
func (s *SettingService) SetAdminPassword(password string) error {
	if password == "" {
		return common.NewError("password can not be empty")
	}
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}
	return s.setString("adminPassword", hash)
}

// ResetSettings removes all stored settings, reverting to defaults.
func (s *SettingService) ResetSettings() error {
	return database.GetDB().Where("1 = 1").Delete(model.Setting{}).Error
}
