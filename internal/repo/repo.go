package repo

import (
	"github.com/akostin/punchpass/internal/pg"
	memberrepo "github.com/akostin/punchpass/internal/repo/member-repo"
	membertyperepo "github.com/akostin/punchpass/internal/repo/membertype-repo"
	operatorrepo "github.com/akostin/punchpass/internal/repo/operator-repo"
	pendingmemberrepo "github.com/akostin/punchpass/internal/repo/pendingmember-repo"
	redeemlogrepo "github.com/akostin/punchpass/internal/repo/redeemlog-repo"
	scanlogrepo "github.com/akostin/punchpass/internal/repo/scanlog-repo"
)

type Repositories struct {
	MemberRepo        *memberrepo.Repository
	MemberTypeRepo    *membertyperepo.Repository
	ScanLogRepo       *scanlogrepo.Repository
	RedeemLogRepo     *redeemlogrepo.Repository
	PendingMemberRepo *pendingmemberrepo.Repository
	OperatorRepo      *operatorrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		MemberRepo:        memberrepo.New(conn),
		MemberTypeRepo:    membertyperepo.New(conn),
		ScanLogRepo:       scanlogrepo.New(conn),
		RedeemLogRepo:     redeemlogrepo.New(conn),
		PendingMemberRepo: pendingmemberrepo.New(conn),
		OperatorRepo:      operatorrepo.New(conn),
	}
}
