package service

import (
	"github.com/akostin/punchpass/internal/handlers/auth"
	"github.com/akostin/punchpass/internal/handlers/pending"
	"github.com/akostin/punchpass/internal/handlers/scan"

	pkgauth "github.com/akostin/punchpass/pkg/auth"

	"github.com/akostin/punchpass/internal/pg"
	"github.com/akostin/punchpass/internal/repo"
	"github.com/akostin/punchpass/internal/service/authservice"
	"github.com/akostin/punchpass/internal/service/memberservice"
	"github.com/akostin/punchpass/internal/service/scanservice"
	"github.com/akostin/punchpass/internal/service/syncservice"
)

type Services struct {
	AuthService   auth.Service
	ScanService   scan.Service
	MemberService *memberservice.Service
	SyncService   pending.SyncService
}

func New(repo *repo.Repositories, source syncservice.Source, txManager pg.TXManager) *Services {
	scanService := scanservice.New(repo.MemberRepo, repo.MemberTypeRepo, repo.ScanLogRepo, repo.RedeemLogRepo)
	syncService := syncservice.New(source, repo.PendingMemberRepo)
	memberService := memberservice.New(repo.MemberRepo, repo.MemberTypeRepo, repo.PendingMemberRepo, repo.RedeemLogRepo, txManager)
	authService := authservice.New(repo.OperatorRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:   authService,
		ScanService:   scanService,
		MemberService: memberService,
		SyncService:   syncService,
	}
}
