// Package geometry contiene el ajuste geométrico de imágenes a rectángulos.
// Son funciones puras sobre dimensiones; las unidades (puntos, milímetros,
// píxeles) las decide el caller, solo importan las proporciones.
package geometry

// Rect dimensiones de una imagen ya ajustada y su desplazamiento horizontal.
type Rect struct {
	Width   float64
	Height  float64
	OffsetX float64 // negativo cuando la imagen desborda los lados y se centra
}

// Cover escala una imagen para cubrir por completo una página conservando la
// proporción. Si la imagen es proporcionalmente más ancha que la página, se
// escala a la altura de la página y el excedente lateral se recorta simétrico
// (OffsetX negativo). Si es más alta, se escala al ancho de la página alineada
// arriba; el excedente inferior lo recorta el límite de la página.
func Cover(imgW, imgH, pageW, pageH float64) Rect {
	imageAspect := imgW / imgH
	pageAspect := pageW / pageH

	if imageAspect > pageAspect {
		w := pageH * imageAspect
		return Rect{
			Width:   w,
			Height:  pageH,
			OffsetX: -(w - pageW) / 2,
		}
	}
	return Rect{
		Width:   pageW,
		Height:  pageW / imageAspect,
		OffsetX: 0,
	}
}

// FitBox escala una imagen para caber dentro de una caja conservando la
// proporción, sin ampliarla más allá de su tamaño original. Es el ajuste del
// comprobante de pago anexo: lado dominante al máximo permitido, el otro en
// proporción.
func FitBox(imgW, imgH, maxW, maxH float64) Rect {
	aspect := imgW / imgH

	if imgW > imgH {
		w := maxW
		if imgW < maxW {
			w = imgW
		}
		return Rect{Width: w, Height: w / aspect}
	}
	h := maxH
	if imgH < maxH {
		h = imgH
	}
	return Rect{Width: h * aspect, Height: h}
}
