package cache

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/rpa-cotacao/internal/domain"
	"github.com/jhoicas/rpa-cotacao/internal/domain/entity"
)

// cachedCompany fila del caché sqlite de consultas exitosas al registro.
type cachedCompany struct {
	CNPJ               string `gorm:"primaryKey;size:14"`
	LegalName          string
	TradeName          string
	RegistrationStatus string
	Street             string
	Number             string
	Municipality       string
	PostalCode         string
	BranchDescription  string
	Phone              string
	Email              string
	FetchedAt          time.Time `gorm:"index"`
}

func (cachedCompany) TableName() string { return "company_cache" }

// CompanyCache caché local de datos catastrales. Evita repetir consultas a
// BrasilAPI entre corridas; las entradas viejas se purgan al abrir.
type CompanyCache struct {
	db  *gorm.DB
	ttl time.Duration
}

// Open abre (o crea) la base sqlite y purga las entradas vencidas.
func Open(path string, ttl time.Duration) (*CompanyCache, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir caché sqlite %s: %w", path, err)
	}
	if err := db.AutoMigrate(&cachedCompany{}); err != nil {
		return nil, fmt.Errorf("migrar esquema del caché: %w", err)
	}
	c := &CompanyCache{db: db, ttl: ttl}
	if _, err := c.purgeExpired(); err != nil {
		return nil, err
	}
	return c, nil
}

// Get devuelve la empresa cacheada; domain.ErrNotFound si no hay entrada
// vigente para el CNPJ.
func (c *CompanyCache) Get(cnpj string) (*entity.Company, error) {
	var row cachedCompany
	err := c.db.Where("cnpj = ? AND fetched_at > ?", cnpj, time.Now().Add(-c.ttl)).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entity.Company{
		CNPJ:               row.CNPJ,
		LegalName:          row.LegalName,
		TradeName:          row.TradeName,
		RegistrationStatus: row.RegistrationStatus,
		Street:             row.Street,
		Number:             row.Number,
		Municipality:       row.Municipality,
		PostalCode:         row.PostalCode,
		BranchDescription:  row.BranchDescription,
		Phone:              row.Phone,
		Email:              row.Email,
	}, nil
}

// Put guarda o renueva la entrada del CNPJ.
func (c *CompanyCache) Put(company *entity.Company) error {
	row := cachedCompany{
		CNPJ:               company.CNPJ,
		LegalName:          company.LegalName,
		TradeName:          company.TradeName,
		RegistrationStatus: company.RegistrationStatus,
		Street:             company.Street,
		Number:             company.Number,
		Municipality:       company.Municipality,
		PostalCode:         company.PostalCode,
		BranchDescription:  company.BranchDescription,
		Phone:              company.Phone,
		Email:              company.Email,
		FetchedAt:          time.Now(),
	}
	return c.db.Save(&row).Error
}

// purgeExpired elimina las entradas más viejas que el TTL.
func (c *CompanyCache) purgeExpired() (int64, error) {
	res := c.db.Where("fetched_at <= ?", time.Now().Add(-c.ttl)).
		Delete(&cachedCompany{})
	if res.Error != nil {
		return 0, fmt.Errorf("purgar caché: %w", res.Error)
	}
	return res.RowsAffected, nil
}
