package ui

import (
	"bytes"
	"html/template"
	"net/http"
	"path"
	"strings"

	"launchdash/domain/launch"
	"launchdash/internal/errors"
	"launchdash/ui/charts"
	"launchdash/ui/middleware"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) handleIndex(c *gin.Context) {
	sel := s.query.Selection(c.Query("site"))
	rng, err := s.query.Range(c.Query("low"), c.Query("high"))
	if err != nil {
		rng = s.query.Slider().Value
	}

	s.renderTemplate(c, "index.html", gin.H{
		"Title":    "SpaceX Launch Records Dashboard",
		"Sites":    s.query.Sites(),
		"Selected": string(sel),
		"Slider":   s.query.Slider(),
		"Range":    s.query.Slider().Clamp(rng),
	})
}

func (s *Server) handleSites(c *gin.Context) {
	c.JSON(http.StatusOK, s.query.Sites())
}

func (s *Server) handleSlider(c *gin.Context) {
	c.JSON(http.StatusOK, s.query.Slider())
}

func (s *Server) handleOutcomes(c *gin.Context) {
	c.JSON(http.StatusOK, s.query.Outcomes(s.query.Selection(c.Query("site"))))
}

func (s *Server) handleScatter(c *gin.Context) {
	sel, rng, ok := s.scatterInputs(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.query.Scatter(sel, rng))
}

func (s *Server) handleSummary(c *gin.Context) {
	c.JSON(http.StatusOK, s.query.Summary(s.query.Selection(c.Query("site"))))
}

// handleChart serves /charts/outcomes.svg, /charts/scatter.png and so on
func (s *Server) handleChart(c *gin.Context) {
	file := c.Param("chart")
	ext := path.Ext(file)
	name := strings.TrimSuffix(file, ext)

	format, err := charts.ParseFormat(strings.TrimPrefix(ext, "."))
	if err != nil {
		respondError(c, errors.WithCode(errors.CodeInvalidInput, err))
		return
	}

	var buf bytes.Buffer
	switch name {
	case "outcomes":
		err = s.render.OutcomesChart(&buf, s.query.Selection(c.Query("site")), format)
	case "scatter":
		sel, rng, ok := s.scatterInputs(c)
		if !ok {
			return
		}
		err = s.render.ScatterChart(&buf, sel, rng, format)
	default:
		respondError(c, errors.NotFound("chart "+name))
		return
	}
	if err != nil {
		s.logger.Error("[Server] Chart %s failed (request %s): %v", file, requestID(c), err)
		respondError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, charts.ContentType(format), buf.Bytes())
}

func (s *Server) handleReport(c *gin.Context) {
	sel, rng, ok := s.scatterInputs(c)
	if !ok {
		return
	}
	s.renderTemplate(c, "report.html", gin.H{
		"Title":    "Launch report: " + string(sel),
		"Selected": string(sel),
		"Body":     template.HTML(s.render.ReportHTML(sel, rng)),
	})
}

func (s *Server) handleExport(c *gin.Context) {
	sel, rng, ok := s.scatterInputs(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := s.render.Export(&buf, sel, rng); err != nil {
		s.logger.Error("[Server] Export failed (request %s): %v", requestID(c), err)
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="launches.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (s *Server) handleHealth(c *gin.Context) {
	ds := s.query.Dataset()
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"dataset_id": ds.ID(),
		"records":    ds.Len(),
	})
}

// scatterInputs reads site, low and high; on a bad number it has already
// written the 400 response
func (s *Server) scatterInputs(c *gin.Context) (launch.SiteSelection, launch.PayloadRange, bool) {
	rng, err := s.query.Range(c.Query("low"), c.Query("high"))
	if err != nil {
		respondError(c, err)
		return "", launch.PayloadRange{}, false
	}
	return s.query.Selection(c.Query("site")), rng, true
}

func requestID(c *gin.Context) string {
	if id, ok := middleware.RequestIDFrom(c.Request.Context()); ok {
		return id.String()
	}
	return "-"
}

func respondError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(errors.HTTPStatus(err), gin.H{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
