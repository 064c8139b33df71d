package repo

import (
	"github.com/GlebRadaev/watchearn/internal/pg"
	balancerepo "github.com/GlebRadaev/watchearn/internal/repo/balance-repo"
	cooldownrepo "github.com/GlebRadaev/watchearn/internal/repo/cooldown-repo"
	earningrepo "github.com/GlebRadaev/watchearn/internal/repo/earning-repo"
	userrepo "github.com/GlebRadaev/watchearn/internal/repo/user-repo"
	viewrepo "github.com/GlebRadaev/watchearn/internal/repo/view-repo"
	withdrawalrepo "github.com/GlebRadaev/watchearn/internal/repo/withdrawal-repo"
)

type Repositories struct {
	Users       *userrepo.Repository
	Balances    *balancerepo.Repository
	Earnings    *earningrepo.Repository
	Views       *viewrepo.Repository
	Cooldowns   *cooldownrepo.Repository
	Withdrawals *withdrawalrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		Users:       userrepo.New(conn),
		Balances:    balancerepo.New(conn),
		Earnings:    earningrepo.New(conn),
		Views:       viewrepo.New(conn),
		Cooldowns:   cooldownrepo.New(conn),
		Withdrawals: withdrawalrepo.New(conn),
	}
}
