package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mujairAuth "github.com/TambakLabs/mujairAuth"
	"github.com/TambakLabs/mujairAuth/internal/middleware"
	"github.com/TambakLabs/mujairAuth/session"
)

type dashboardFeature struct {
	Icon  string
	Title string
	Desc  string
}

type dashboardContent struct {
	Icon     string
	Title    string
	Welcome  string
	Subtitle string
	Features []dashboardFeature
}

// Per-role dashboard copy. The card lists mirror the Geboy Mujair feature
// set for each role.
var dashboards = map[mujairAuth.Role]dashboardContent{
	mujairAuth.RoleCashier: {
		Icon:     "💰",
		Title:    "Dashboard Kasir",
		Welcome:  "Selamat Datang, Kasir!",
		Subtitle: "Kelola transaksi dan penjualan ikan mujair dengan mudah",
		Features: []dashboardFeature{
			{"🛒", "Transaksi Penjualan", "Catat penjualan ikan mujair"},
			{"📝", "Riwayat Transaksi", "Lihat riwayat transaksi harian"},
			{"💵", "Laporan Kas", "Laporan pemasukan dan pengeluaran"},
		},
	},
	mujairAuth.RoleAccountant: {
		Icon:     "📊",
		Title:    "Dashboard Akuntan",
		Welcome:  "Selamat Datang, Akuntan!",
		Subtitle: "Kelola siklus akuntansi budidaya ikan mujair",
		Features: []dashboardFeature{
			{"📖", "Jurnal Umum", "Catat transaksi keuangan"},
			{"📚", "Buku Besar", "Posting ke buku besar"},
			{"⚖️", "Neraca Saldo", "Lihat neraca saldo periode"},
			{"📋", "Laporan Keuangan", "Generate laporan keuangan"},
		},
	},
	mujairAuth.RoleOwner: {
		Icon:     "👔",
		Title:    "Dashboard Owner",
		Welcome:  "Selamat Datang, Owner!",
		Subtitle: "Pantau seluruh operasional budidaya ikan mujair Anda",
		Features: []dashboardFeature{
			{"📈", "Dashboard Analytics", "Lihat performa bisnis real-time"},
			{"💼", "Laporan Keuangan", "Analisis laporan laba rugi"},
			{"👥", "Manajemen Tim", "Kelola karyawan dan kasir"},
			{"🎯", "Target & Planning", "Set target produksi dan penjualan"},
		},
	},
	mujairAuth.RoleStaff: {
		Icon:     "👷",
		Title:    "Dashboard Karyawan",
		Welcome:  "Selamat Datang, Karyawan!",
		Subtitle: "Kelola kegiatan operasional budidaya ikan mujair",
		Features: []dashboardFeature{
			{"🐠", "Monitoring Kolam", "Catat kondisi kolam ikan"},
			{"🍽️", "Pemberian Pakan", "Jadwal dan catat pemberian pakan"},
			{"📊", "Laporan Harian", "Buat laporan kegiatan harian"},
			{"🔔", "Notifikasi", "Lihat tugas dan reminder"},
		},
	},
}

// Dashboard renders the role dashboard for sessions the role gate already
// validated.
func (h *Handler) Dashboard(role mujairAuth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := c.MustGet(middleware.SessionKey).(*session.Session)
		info := dashboards[role]

		c.HTML(http.StatusOK, "dashboard.html", gin.H{
			"Title":    info.Title,
			"Icon":     info.Icon,
			"Welcome":  info.Welcome,
			"Subtitle": info.Subtitle,
			"Features": info.Features,
			"Username": sess.Username,
		})
	}
}
